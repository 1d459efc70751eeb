package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"golang.org/x/text/unicode/norm"
)

//go:embed schema.cue
var schemaCUE string

// Error codes for profile loading. Profile failures are fatal at startup,
// so every code surfaces to the user exactly once.
const (
	ErrCodeGeneric  = "P001" // Generic/unknown error
	ErrCodeNotFound = "P002" // Profile file not found
	ErrCodeParse    = "P003" // CUE parse/build failed
	ErrCodeSchema   = "P004" // Schema violation
	ErrCodeEmpty    = "P005" // No categories defined
	ErrCodeBadField = "P006" // Field extraction failed
)

// LoadError is a profile loading error with an error code and,
// when available, a CUE source position.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads and compiles a CUE profile file.
// Any failure here is a fatal startup condition for the caller.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("profile not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading profile: %v", err)}
	}
	return Parse(data, path)
}

// Parse compiles profile bytes, unifies them with the embedded schema,
// and extracts the category set.
func Parse(data []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling embedded schema: %v", err)}
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeParse, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeSchema, err)
	}

	categoriesVal := unified.LookupPath(cue.ParsePath("category"))
	if !categoriesVal.Exists() {
		return nil, &LoadError{Code: ErrCodeEmpty, Message: "no categories defined (missing top-level \"category\")"}
	}

	iter, err := categoriesVal.Fields()
	if err != nil {
		return nil, cueLoadError(ErrCodeParse, err)
	}

	var categories []Category
	for iter.Next() {
		cat, err := extractCategory(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	if len(categories) == 0 {
		return nil, &LoadError{Code: ErrCodeEmpty, Message: "profile defines no categories"}
	}

	return New(categories), nil
}

// extractCategory pulls one category out of a validated CUE value.
func extractCategory(key string, v cue.Value) (Category, error) {
	cat := Category{
		Key:        norm.NFC.String(key),
		Activities: make(map[string]Activity),
	}

	name, err := v.LookupPath(cue.ParsePath("name")).String()
	if err != nil {
		return Category{}, fieldError(key, "name", v, err)
	}
	cat.Name = norm.NFC.String(name)

	weight, err := v.LookupPath(cue.ParsePath("weight")).Float64()
	if err != nil {
		return Category{}, fieldError(key, "weight", v, err)
	}
	cat.Weight = weight

	actsVal := v.LookupPath(cue.ParsePath("activities"))
	actIter, err := actsVal.Fields()
	if err != nil {
		return Category{}, fieldError(key, "activities", v, err)
	}
	for actIter.Next() {
		act, err := extractActivity(key, actIter.Label(), actIter.Value())
		if err != nil {
			return Category{}, err
		}
		cat.Activities[act.Key] = act
	}

	return cat, nil
}

// extractActivity pulls one activity out of a validated CUE value.
func extractActivity(categoryKey, key string, v cue.Value) (Activity, error) {
	act := Activity{Key: norm.NFC.String(key)}

	name, err := v.LookupPath(cue.ParsePath("name")).String()
	if err != nil {
		return Activity{}, fieldError(categoryKey, key+".name", v, err)
	}
	act.Name = norm.NFC.String(name)

	unit, err := v.LookupPath(cue.ParsePath("unit")).String()
	if err != nil {
		return Activity{}, fieldError(categoryKey, key+".unit", v, err)
	}
	act.Unit = norm.NFC.String(unit)

	impact, err := v.LookupPath(cue.ParsePath("impact_per_unit")).Float64()
	if err != nil {
		return Activity{}, fieldError(categoryKey, key+".impact_per_unit", v, err)
	}
	act.ImpactPerUnit = impact

	return act, nil
}

// fieldError reports a failed field extraction with position info.
func fieldError(categoryKey, field string, v cue.Value, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeBadField,
		Message: fmt.Sprintf("category %q: %s: %v", categoryKey, field, err),
		Pos:     v.Pos(),
	}
}

// cueLoadError extracts position info from CUE errors.
func cueLoadError(code string, err error) *LoadError {
	errs := errors.Errors(err)
	if len(errs) > 0 {
		first := errs[0]
		positions := errors.Positions(first)
		if len(positions) > 0 {
			return &LoadError{Code: code, Message: first.Error(), Pos: positions[0]}
		}
		return &LoadError{Code: code, Message: first.Error()}
	}
	return &LoadError{Code: code, Message: err.Error()}
}
