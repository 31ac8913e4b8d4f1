package menu

import (
	"testing"

	"menuexport/internal/sheet"
)

func TestNormalizeBool(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		def  bool
		want bool
	}{
		{name: "nil keeps default true", raw: nil, def: true, want: true},
		{name: "nil keeps default false", raw: nil, def: false, want: false},
		{name: "blank keeps default", raw: "   ", def: true, want: true},
		{name: "bool passthrough true", raw: true, def: false, want: true},
		{name: "bool passthrough false", raw: false, def: true, want: false},
		{name: "true token", raw: "true", def: false, want: true},
		{name: "TRUE token", raw: "TRUE", def: false, want: true},
		{name: "one token", raw: "1", def: false, want: true},
		{name: "numeric one", raw: 1, def: false, want: true},
		{name: "yes token", raw: "yes", def: false, want: true},
		{name: "Y token", raw: "Y", def: false, want: true},
		{name: "T token", raw: "T", def: false, want: true},
		{name: "no token is false", raw: "no", def: true, want: false},
		{name: "zero token is false", raw: "0", def: true, want: false},
		{name: "false token is false", raw: "false", def: true, want: false},
		{name: "arbitrary token is false", raw: "maybe", def: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBool(tt.raw, tt.def); got != tt.want {
				t.Errorf("NormalizeBool(%v, %v) = %v, want %v", tt.raw, tt.def, got, tt.want)
			}
		})
	}
}

func TestNormalizeSort(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		def  float64
		want float64
	}{
		{name: "nil keeps default", raw: nil, def: 0, want: 0},
		{name: "blank keeps default", raw: "  ", def: 0, want: 0},
		{name: "unparseable keeps default", raw: "abc", def: 0, want: 0},
		{name: "parses decimal", raw: "3.5", def: 0, want: 3.5},
		{name: "parses integer string", raw: "7", def: 0, want: 7},
		{name: "parses padded string", raw: " 2 ", def: 0, want: 2},
		{name: "float passthrough", raw: 1.25, def: 0, want: 1.25},
		{name: "int passthrough", raw: 4, def: 0, want: 4},
		{name: "negative", raw: "-1.5", def: 0, want: -1.5},
		{name: "nonzero default survives garbage", raw: "n/a", def: 9, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSort(tt.raw, tt.def); got != tt.want {
				t.Errorf("NormalizeSort(%v, %v) = %v, want %v", tt.raw, tt.def, got, tt.want)
			}
		})
	}
}

func TestToMenuItem(t *testing.T) {
	tests := []struct {
		name     string
		row      sheet.Row
		wantOK   bool
		wantItem MenuItem
	}{
		{
			name: "complete row",
			row: sheet.Row{
				"category": " Mains ", "item": " Burger ", "price": " 12.50 ",
				"description": " Beef. ", "available": "yes", "sort": "2", "image_url": " http://x/b.jpg ",
			},
			wantOK: true,
			wantItem: MenuItem{
				Name: "Burger", Description: "Beef.", PriceDisplay: "12.50",
				ImageURL: "http://x/b.jpg", Sort: 2, Category: "Mains",
			},
		},
		{
			name:   "blank category excluded",
			row:    sheet.Row{"category": "   ", "item": "Burger"},
			wantOK: false,
		},
		{
			name:   "blank item excluded",
			row:    sheet.Row{"category": "Mains", "item": ""},
			wantOK: false,
		},
		{
			name:   "unavailable excluded",
			row:    sheet.Row{"category": "Mains", "item": "Burger", "available": "no"},
			wantOK: false,
		},
		{
			name:   "blank availability defaults to true",
			row:    sheet.Row{"category": "Mains", "item": "Burger", "available": ""},
			wantOK: true,
			wantItem: MenuItem{
				Name: "Burger", Category: "Mains",
			},
		},
		{
			name:   "price carried verbatim not parsed",
			row:    sheet.Row{"category": "Mains", "item": "Special", "price": "market price"},
			wantOK: true,
			wantItem: MenuItem{
				Name: "Special", PriceDisplay: "market price", Category: "Mains",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToMenuItem(tt.row)
			if ok != tt.wantOK {
				t.Fatalf("ToMenuItem() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.wantItem {
				t.Errorf("ToMenuItem() = %+v, want %+v", got, tt.wantItem)
			}
		})
	}
}
