package dirsearch

import (
	"fmt"
	"reflect"
	"strings"

	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
)

const tagKey = "dirsearch"

type role int

const (
	roleKey role = iota
	roleName
	roleText
	roleCategories
	rolePlatform
	roleLocations
	roleScore
	roleVerified
	roleURL
	roleCount
)

var roleNames = map[string]role{
	"key":        roleKey,
	"name":       roleName,
	"text":       roleText,
	"categories": roleCategories,
	"platform":   rolePlatform,
	"locations":  roleLocations,
	"score":      roleScore,
	"verified":   roleVerified,
	"url":        roleURL,
}

// schemaMeta maps entry roles to struct field indexes, parsed once per type.
type schemaMeta struct {
	typ    reflect.Type
	fields [roleCount]int // -1 when the role is not mapped
}

// parseSchema reflects on T and reads its dirsearch struct tags.
//
//	type Shop struct {
//	    ID    string   `dirsearch:"key"`
//	    Title string   `dirsearch:"name"`
//	    Tags  []string `dirsearch:"categories"`
//	    City  string   `dirsearch:"locations"`
//	}
func parseSchema[T any]() (*schemaMeta, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil, fmt.Errorf("dirsearch: type parameter must be a struct")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dirsearch: type %s is not a struct", t)
	}

	meta := &schemaMeta{typ: t}
	for i := range meta.fields {
		meta.fields[i] = -1
	}

	for i := range t.NumField() {
		f := t.Field(i)
		tag := strings.TrimSpace(f.Tag.Get(tagKey))
		if tag == "" || tag == "-" {
			continue
		}
		if err := meta.applyTag(i, f, tag); err != nil {
			return nil, err
		}
	}

	if meta.fields[roleKey] == -1 || meta.fields[roleName] == -1 {
		return nil, fmt.Errorf("dirsearch: %s needs fields tagged `dirsearch:\"key\"` and `dirsearch:\"name\"`", t)
	}
	return meta, nil
}

func (m *schemaMeta) applyTag(idx int, f reflect.StructField, tag string) error {
	r, ok := roleNames[tag]
	if !ok {
		return fmt.Errorf("dirsearch: unknown role %q on field %s", tag, f.Name)
	}
	if m.fields[r] != -1 {
		return fmt.Errorf("dirsearch: duplicate %q tag on field %s", tag, f.Name)
	}
	if !kindAllowed(r, f.Type) {
		return fmt.Errorf("dirsearch: field %s has type %s, not usable as %q", f.Name, f.Type, tag)
	}
	m.fields[r] = idx
	return nil
}

func kindAllowed(r role, t reflect.Type) bool {
	switch r {
	case roleText, roleCategories, roleLocations:
		return t.Kind() == reflect.String ||
			(t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String)
	case roleScore:
		switch t.Kind() {
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false
	case roleVerified:
		return t.Kind() == reflect.Bool
	default:
		return t.Kind() == reflect.String
	}
}

// toEntryFile converts a tagged struct to the catalog file shape.
func (m *schemaMeta) toEntryFile(item any) catalogrepo.EntryFile {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	var e catalogrepo.EntryFile
	e.Key = m.str(v, roleKey)
	e.Name = m.str(v, roleName)
	e.Platform = m.str(v, rolePlatform)
	e.URL = m.str(v, roleURL)
	e.Text = m.list(v, roleText)
	e.Categories = m.list(v, roleCategories)
	e.Locations = m.list(v, roleLocations)
	if i := m.fields[roleScore]; i != -1 {
		e.Score = toFloat64(v.Field(i))
	}
	if i := m.fields[roleVerified]; i != -1 {
		e.Verified = v.Field(i).Bool()
	}
	return e
}

// fromEntry fills a new T from a search result entry.
// A string field mapped to a list role receives the first element.
func (m *schemaMeta) fromEntry(e *Entry) any {
	v := reflect.New(m.typ).Elem()

	m.setStr(v, roleKey, e.Key)
	m.setStr(v, roleName, e.Name)
	m.setStr(v, rolePlatform, e.Platform)
	m.setStr(v, roleURL, e.URL)
	m.setList(v, roleText, e.Text)
	m.setList(v, roleCategories, e.Categories)
	m.setList(v, roleLocations, e.Locations)
	if i := m.fields[roleScore]; i != -1 {
		setFloat(v.Field(i), e.Score)
	}
	if i := m.fields[roleVerified]; i != -1 {
		v.Field(i).SetBool(e.Verified)
	}
	return v.Interface()
}

func (m *schemaMeta) str(v reflect.Value, r role) string {
	if i := m.fields[r]; i != -1 {
		return v.Field(i).String()
	}
	return ""
}

func (m *schemaMeta) list(v reflect.Value, r role) []string {
	i := m.fields[r]
	if i == -1 {
		return nil
	}
	f := v.Field(i)
	if f.Kind() == reflect.String {
		if f.String() == "" {
			return nil
		}
		return []string{f.String()}
	}
	out := make([]string, f.Len())
	for j := range out {
		out[j] = f.Index(j).String()
	}
	return out
}

func (m *schemaMeta) setStr(v reflect.Value, r role, s string) {
	if i := m.fields[r]; i != -1 {
		v.Field(i).SetString(s)
	}
}

func (m *schemaMeta) setList(v reflect.Value, r role, vals []string) {
	i := m.fields[r]
	if i == -1 {
		return
	}
	f := v.Field(i)
	if f.Kind() == reflect.String {
		if len(vals) > 0 {
			f.SetString(vals[0])
		}
		return
	}
	s := reflect.MakeSlice(f.Type(), len(vals), len(vals))
	for j, val := range vals {
		s.Index(j).SetString(val)
	}
	f.Set(s)
}

func toFloat64(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return 0
	}
}

func setFloat(v reflect.Value, f float64) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(f))
	}
}
