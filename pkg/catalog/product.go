package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductID identifies a product. Upstream catalogs send it either as a
// JSON string or a JSON number; both are kept in their textual form.
type ProductID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or number: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// String returns the textual form of the id.
func (id ProductID) String() string {
	return string(id)
}

// Rating is the aggregate review score some catalogs attach to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is one catalog record. Only ID and Category are inspected by the
// filter; the remaining fields are passed through to the item card. Every
// field of the original object is also kept in Raw.
type Product struct {
	ID          ProductID       `json:"id"`
	Category    string          `json:"category"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Rating      *Rating         `json:"rating,omitempty"`

	Raw map[string]json.RawMessage `json:"-"`

	// untyped holds pass-through fields whose value did not fit the typed
	// field; they are shown as extra fields instead.
	untyped map[string]struct{}
}

// knownFields are decoded into typed Product fields.
var knownFields = map[string]struct{}{
	"id":          {},
	"category":    {},
	"title":       {},
	"price":       {},
	"description": {},
	"image":       {},
	"rating":      {},
}

var errNotObject = errors.New("product must be a JSON object")

// UnmarshalJSON retains the raw object and decodes the typed fields. Only a
// non-object, a bad id or a non-string category is an error; a pass-through
// field of an unexpected type is left zero and kept in Raw.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errNotObject
	}
	if raw == nil {
		return errNotObject
	}

	out := Product{Raw: raw}

	if value, ok := raw["id"]; ok {
		if err := json.Unmarshal(value, &out.ID); err != nil {
			return err
		}
	}
	if value, ok := raw["category"]; ok {
		if err := json.Unmarshal(value, &out.Category); err != nil {
			return fmt.Errorf("product category must be a string: %w", err)
		}
	}

	out.decodePassThrough("title", &out.Title)
	out.decodePassThrough("price", &out.Price)
	out.decodePassThrough("description", &out.Description)
	out.decodePassThrough("image", &out.Image)

	var rating Rating
	if out.decodePassThrough("rating", &rating) && string(bytes.TrimSpace(raw["rating"])) != "null" {
		out.Rating = &rating
	}

	*p = out
	return nil
}

// decodePassThrough decodes raw[name] into dst when present. It reports
// whether dst was set.
func (p *Product) decodePassThrough(name string, dst interface{}) bool {
	value, ok := p.Raw[name]
	if !ok {
		return false
	}
	if err := json.Unmarshal(value, dst); err != nil {
		if p.untyped == nil {
			p.untyped = make(map[string]struct{})
		}
		p.untyped[name] = struct{}{}
		return false
	}
	return true
}

// Field is one pass-through attribute that has no typed Product field.
type Field struct {
	Name  string
	Value string
}

// ExtraFields returns the raw attributes not covered by the typed fields,
// sorted by name. String values are unquoted; everything else is shown as
// compact JSON.
func (p Product) ExtraFields() []Field {
	if len(p.Raw) == 0 {
		return nil
	}

	names := make([]string, 0, len(p.Raw))
	for name := range p.Raw {
		if _, ok := knownFields[name]; ok {
			if _, untyped := p.untyped[name]; !untyped {
				continue
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		value := p.Raw[name]

		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			fields = append(fields, Field{Name: name, Value: s})
			continue
		}
		fields = append(fields, Field{Name: name, Value: strings.TrimSpace(string(value))})
	}

	return fields
}

// FormattedPrice renders the price with two decimal places.
func (p Product) FormattedPrice() string {
	return "$" + p.Price.StringFixed(2)
}
