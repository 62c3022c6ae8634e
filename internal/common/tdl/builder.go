// Package tdl builds the request documents the accounting engine understands. Two dialects
// exist: template reports (REPORT/FORM/PART/LINE/FIELD over a typed collection) for masters
// and collection exports with an explicit method list for vouchers.
package tdl

import (
	"bytes"
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/iancoleman/strcase"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

var (
	// ErrUndeclaredCollectionType guards against a collection without <TYPE>, which the
	// upstream answers with blank fields instead of an error.
	ErrUndeclaredCollectionType = errors.New("collection type is not declared")
	ErrInvalidMethod            = errors.New("invalid native method")
	ErrDialectMismatch          = errors.New("entity does not use this dialect")
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("tdl").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{"xmlEscape": xmlEscape}).
	ParseFS(templateFS, "templates/*.tmpl"))

// methodPattern only admits named methods; wildcards and expressions never reach the wire.
var methodPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(\.[A-Za-z][A-Za-z0-9]*)*$`)

// Request is a built upstream request. Body is empty for entities that are only
// meaningful on the secondary channel.
type Request struct {
	Entity  Entity
	Company string
	From    string
	To      string
	Body    []byte
}

type reportData struct {
	Company        string
	Report         string
	Form           string
	Part           string
	Line           string
	Collection     string
	CollectionType string
	Fields         []Field
	FieldIDs       []string
}

type collectionData struct {
	Company        string
	From           string
	To             string
	Collection     string
	CollectionType string
	Methods        []string
	EntryList      string
	EntryMethods   []string
}

// BuildReport renders a template-report request for a master entity.
func BuildReport(e Entity, company string) (Request, error) {
	if e.Dialect != DialectReport {
		return Request{}, fmt.Errorf("%w: %s", ErrDialectMismatch, e.Kind)
	}
	if strings.TrimSpace(e.CollectionType) == "" {
		return Request{}, fmt.Errorf("%w: %s", ErrUndeclaredCollectionType, e.Kind)
	}
	company = strings.TrimSpace(company)
	if e.CompanyScoped && company == "" {
		return Request{}, fmt.Errorf("%w: company name is empty", models.ErrInvalidParameter)
	}
	if !e.CompanyScoped {
		company = ""
	}
	if err := validateMethods(e.Fields, ""); err != nil {
		return Request{}, err
	}

	name := "Extract" + strcase.ToCamel(string(e.Kind))
	data := reportData{
		Company:        company,
		Report:         name + "Report",
		Form:           name + "Form",
		Part:           name + "Part",
		Line:           name + "Line",
		Collection:     name + "Collection",
		CollectionType: e.CollectionType,
		Fields:         e.Fields,
	}
	for _, f := range e.Fields {
		data.FieldIDs = append(data.FieldIDs, f.ID())
	}

	body, err := render("report.tmpl", data)
	if err != nil {
		return Request{}, err
	}
	return Request{Entity: e, Company: company, Body: body}, nil
}

// BuildCollection renders a collection-export request for a date window. Dates are
// 8-digit YYYYMMDD, inclusive, from <= to.
func BuildCollection(e Entity, company, from, to string) (Request, error) {
	if e.Dialect != DialectCollection {
		return Request{}, fmt.Errorf("%w: %s", ErrDialectMismatch, e.Kind)
	}
	if strings.TrimSpace(e.CollectionType) == "" {
		return Request{}, fmt.Errorf("%w: %s", ErrUndeclaredCollectionType, e.Kind)
	}
	company = strings.TrimSpace(company)
	if company == "" {
		return Request{}, fmt.Errorf("%w: company name is empty", models.ErrInvalidParameter)
	}
	fromDate, toDate, err := ParseRange(from, to)
	if err != nil {
		return Request{}, err
	}
	if err := validateMethods(e.Fields, ""); err != nil {
		return Request{}, err
	}
	if err := validateMethods(e.EntryFields, e.EntryList); err != nil {
		return Request{}, err
	}

	data := collectionData{
		Company:        company,
		From:           fromDate.Tally(),
		To:             toDate.Tally(),
		Collection:     "Extract" + strcase.ToCamel(string(e.Kind)) + "Collection",
		CollectionType: e.CollectionType,
		EntryList:      e.EntryList,
	}
	for _, f := range e.Fields {
		data.Methods = append(data.Methods, f.Method)
	}
	for _, f := range e.EntryFields {
		data.EntryMethods = append(data.EntryMethods, e.EntryList+"."+f.Method)
	}

	body, err := render("collection.tmpl", data)
	if err != nil {
		return Request{}, err
	}
	return Request{Entity: e, Company: company, From: data.From, To: data.To, Body: body}, nil
}

// ParseRange validates an inclusive YYYYMMDD window.
func ParseRange(from, to string) (models.Date, models.Date, error) {
	fromDate, err := models.ParseTallyDate(from)
	if err != nil {
		return models.Date{}, models.Date{}, err
	}
	toDate, err := models.ParseTallyDate(to)
	if err != nil {
		return models.Date{}, models.Date{}, err
	}
	if toDate.Before(fromDate.Time) {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: from date %s is after to date %s", models.ErrInvalidParameter, from, to)
	}
	return fromDate, toDate, nil
}

func validateMethods(fields []Field, list string) error {
	if list != "" && !methodPattern.MatchString(list) {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, list)
	}
	for _, f := range fields {
		if !methodPattern.MatchString(f.Method) {
			return fmt.Errorf("%w: %q", ErrInvalidMethod, f.Method)
		}
	}
	return nil
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func xmlEscape(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
