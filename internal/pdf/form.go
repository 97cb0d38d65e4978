// Package pdf renders the Firearms Guardian application form: a fixed
// single-page A4 document with interactive text fields, a province
// dropdown and checkboxes, so the recipient can fill and flatten it in
// any PDF viewer. The layout is described declaratively and handed to
// pdfcpu's creation grammar; no external state or randomness is
// involved, so the structure is deterministic.
package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	FormFilename = "Firearms_Guardian_Application_Form.pdf"
	FormMIMEType = "application/pdf"
)

// A4 geometry in points, origin top-left.
const (
	pageW    = 595.0
	pageH    = 842.0
	margin   = 40.0
	fullW    = pageW - 2*margin
	halfW    = 240.0
	col2X    = margin + 255
	fieldH   = 22.0
	labelGap = 2.0
	rowGap   = 8.0
)

// declarationSize is the smallest size the creation grammar accepts for
// the fine print; font sizes are whole points.
const declarationSize = 8

const (
	brandRed   = "#DC2626"
	inkBlack   = "#1F1F1F"
	inkGray    = "#6B6B6B"
	borderGray = "#C7C7C7"
	fieldGray  = "#F7F7F7"
	bandGray   = "#F5F5F5"
	headerPink = "#FFD9D9"
	white      = "#FFFFFF"
)

var provinces = []string{
	"Eastern Cape", "Free State", "Gauteng", "KwaZulu-Natal", "Limpopo",
	"Mpumalanga", "Northern Cape", "North West", "Western Cape",
}

const provincePlaceholder = "Please select"

const declarationText = "I hereby request and authorise the Administrator, Firearms Guardian " +
	"(Pty) Ltd, or its agents, to draw against my bank account as indicated each month. " +
	"I apply for a Firearms Guardian policy in accordance with all applicable terms and " +
	"conditions. I warrant that all information given in this application form is true " +
	"and complete. I understand that the acceptance of my application is in the sole " +
	"discretion of Firearms Guardian and GENRIC Insurance Company Limited."

// Creation-grammar document. The structs below marshal to the JSON the
// PDF library's create API consumes: elements carry pos plus
// width/height, and with an upperLeft origin pos[1] is measured downward
// from the page top and marks the element's bottom edge.

type formSpec struct {
	Paper  string              `json:"paper"`
	Origin string              `json:"origin"`
	Pages  map[string]formPage `json:"pages"`
}

type formPage struct {
	Content pageContent `json:"content"`
}

type pageContent struct {
	Boxes      []box       `json:"box,omitempty"`
	Texts      []text      `json:"text,omitempty"`
	TextFields []textField `json:"textfield,omitempty"`
	CheckBoxes []checkBox  `json:"checkbox,omitempty"`
	ComboBoxes []comboBox  `json:"combobox,omitempty"`
}

type fontSpec struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Color string `json:"col,omitempty"`
}

type borderSpec struct {
	Width int    `json:"width"`
	Color string `json:"col"`
}

type box struct {
	Pos     [2]float64 `json:"pos"`
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	FillCol string     `json:"fillCol"`
}

type text struct {
	Value string     `json:"value"`
	Pos   [2]float64 `json:"pos"`
	Font  fontSpec   `json:"font"`
}

type textField struct {
	ID     string      `json:"id"`
	Pos    [2]float64  `json:"pos"`
	Width  float64     `json:"width"`
	Font   fontSpec    `json:"font"`
	BgCol  string      `json:"bgCol,omitempty"`
	Border *borderSpec `json:"border,omitempty"`
}

type checkBox struct {
	ID    string     `json:"id"`
	Pos   [2]float64 `json:"pos"`
	Width float64    `json:"width"`
}

type comboBox struct {
	ID      string      `json:"id"`
	Pos     [2]float64  `json:"pos"`
	Width   float64     `json:"width"`
	Options []string    `json:"options"`
	Default string      `json:"default"`
	Font    fontSpec    `json:"font"`
	BgCol   string      `json:"bgCol,omitempty"`
	Border  *borderSpec `json:"border,omitempty"`
}

func fieldBorder() *borderSpec {
	return &borderSpec{Width: 1, Color: borderGray}
}

// Form renders the application form to bytes.
func Form() ([]byte, error) {
	b := build()
	js, err := json.Marshal(b.doc())
	if err != nil {
		return nil, fmt.Errorf("pdf: marshal form spec: %w", err)
	}
	var out bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(js), &out, nil); err != nil {
		return nil, fmt.Errorf("pdf: create form: %w", err)
	}
	return out.Bytes(), nil
}

// FieldNames returns the persisted names of the interactive fields in
// layout order. Downstream viewers key fill-in values on these.
func FieldNames() []string {
	return build().order
}

type formBuilder struct {
	content pageContent
	order   []string
	y       float64
}

func (b *formBuilder) doc() formSpec {
	return formSpec{
		Paper:  "A4",
		Origin: "upperLeft",
		Pages:  map[string]formPage{"1": {Content: b.content}},
	}
}

// box fills a rectangle whose top edge sits at top.
func (b *formBuilder) box(x, top, w, h float64, fill string) {
	b.content.Boxes = append(b.content.Boxes, box{
		Pos:     [2]float64{x, top + h},
		Width:   w,
		Height:  h,
		FillCol: fill,
	})
}

func (b *formBuilder) text(value string, x, y float64, size int, col string, name string) {
	b.content.Texts = append(b.content.Texts, text{
		Value: value,
		Pos:   [2]float64{x, y},
		Font:  fontSpec{Name: name, Size: size, Color: col},
	})
}

func (b *formBuilder) section(title string) {
	b.box(margin, b.y, fullW, 18, brandRed)
	b.text(strings.ToUpper(title), margin+8, b.y+13, 9, white, "Helvetica-Bold")
	b.y += 34
}

// field reserves a fieldH tall row; the widget's own height follows from
// its font size, anchored to the row's bottom edge.
func (b *formBuilder) field(id string, x, top, w float64) {
	b.order = append(b.order, id)
	b.content.TextFields = append(b.content.TextFields, textField{
		ID:     id,
		Pos:    [2]float64{x, top + fieldH},
		Width:  w,
		Font:   fontSpec{Name: "Helvetica", Size: 10},
		BgCol:  fieldGray,
		Border: fieldBorder(),
	})
}

func (b *formBuilder) fullField(label, id string) {
	b.text(label, margin, b.y+8, 8, inkGray, "Helvetica-Bold")
	top := b.y + 8 + labelGap
	b.field(id, margin, top, fullW)
	b.y = top + fieldH + rowGap
}

func (b *formBuilder) halfFields(label1, id1, label2, id2 string) {
	b.text(label1, margin, b.y+8, 8, inkGray, "Helvetica-Bold")
	b.text(label2, col2X, b.y+8, 8, inkGray, "Helvetica-Bold")
	top := b.y + 8 + labelGap
	b.field(id1, margin, top, halfW)
	b.field(id2, col2X, top, halfW)
	b.y = top + fieldH + rowGap
}

func (b *formBuilder) checkbox(id, label string, bold bool) {
	b.order = append(b.order, id)
	b.content.CheckBoxes = append(b.content.CheckBoxes, checkBox{
		ID:    id,
		Pos:   [2]float64{margin, b.y + 14},
		Width: 14,
	})
	name := "Helvetica"
	if bold {
		name = "Helvetica-Bold"
	}
	b.text(label, margin+22, b.y+11, 9, inkBlack, name)
}

func (b *formBuilder) dropdown(id, label string, options []string, def string) {
	b.text(label, margin, b.y+8, 8, inkGray, "Helvetica-Bold")
	top := b.y + 8 + labelGap
	b.order = append(b.order, id)
	b.content.ComboBoxes = append(b.content.ComboBoxes, comboBox{
		ID:      id,
		Pos:     [2]float64{margin, top + fieldH},
		Width:   halfW,
		Options: append([]string{def}, options...),
		Default: def,
		Font:    fontSpec{Name: "Helvetica", Size: 10},
		BgCol:   fieldGray,
		Border:  fieldBorder(),
	})
	b.y = top + fieldH + rowGap
}

func build() *formBuilder {
	b := &formBuilder{y: 72}

	// Header band
	b.box(0, 0, pageW, 50, brandRed)
	b.text("FIREARMS GUARDIAN", margin, 32, 18, white, "Helvetica-Bold")
	b.text("Application Form", margin, 46, 10, headerPink, "Helvetica")

	b.section("Personal Details")
	b.halfFields("Surname", "surname", "Name", "name")
	b.halfFields("ID Number", "id_number", "Mobile Number", "mobile")
	b.fullField("Email Address", "email")
	b.fullField("Street Address", "street")
	b.halfFields("Suburb", "suburb", "City", "city")
	b.dropdown("province", "Province", provinces, provincePlaceholder)
	b.y += 6

	b.section("Bank Account Details")
	b.fullField("Account Holder", "account_holder")
	b.halfFields("Bank Name", "bank_name", "Account Type", "account_type")
	b.fullField("Account Number", "account_number")
	b.y += 6

	b.section("Choose Your Cover")
	b.text("Please select one:", margin, b.y+9, 9, inkBlack, "Helvetica")
	b.y += 20
	// The two price tiers are independent checkboxes, matching the form
	// this replaces; they are not mutually exclusive at the data level.
	b.checkbox("option_1", "Option 1: R135.00/month - Comprehensive Legal Protection", false)
	b.y += 22
	b.checkbox("option_2", "Option 2: R245.00/month - Enhanced Legal and Liability Cover", false)
	b.y += 30
	b.halfField("Preferred Debit Date (1st - 28th)", "debit_date")
	b.y += 6

	b.section("Declaration & Debit Order Authorisation")
	for _, line := range WrapText(declarationText, fullW, declarationSize, textWidth) {
		b.text(line, margin, b.y+8, declarationSize, inkGray, "Helvetica")
		b.y += 11
	}
	b.y += 7
	b.checkbox("agree", "I agree to the above declaration and debit order authorisation", true)
	b.y += 30
	b.halfFields("Signature (Type full name)", "signature", "Date", "date")

	// Footer band
	b.box(0, pageH-28, pageW, 28, bandGray)
	b.text("Firearms Guardian (Pty) Ltd (FSP 47115) | Underwritten by GENRIC Insurance Company Limited (FSP 43638)",
		margin, pageH-17, 7, inkGray, "Helvetica")
	b.text("012 665 2500 | info@firearmsguardian.co.za | firearmsguardian.co.za",
		margin, pageH-9, 7, inkGray, "Helvetica")

	return b
}

// halfField lays out a single half-width field in the left column.
func (b *formBuilder) halfField(label, id string) {
	b.text(label, margin, b.y+8, 8, inkGray, "Helvetica-Bold")
	top := b.y + 8 + labelGap
	b.field(id, margin, top, halfW)
	b.y = top + fieldH + rowGap
}
