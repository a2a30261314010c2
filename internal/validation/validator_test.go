// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type productoPrueba struct {
	Nombre    string   `json:"nombre" validate:"required,notblank,max=200"`
	Precio    *float64 `json:"precio" validate:"required,gte=0"`
	Stock     int      `json:"stock" validate:"gte=0"`
	Categoria string   `json:"categoria" validate:"omitempty,oneof=General Electrónica"`
}

func ptr(f float64) *float64 { return &f }

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     productoPrueba
		wantErr   bool
		wantTag   string
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid product",
			input: productoPrueba{Nombre: "Laptop", Precio: ptr(899.99), Stock: 3},
		},
		{
			name:  "zero price is valid",
			input: productoPrueba{Nombre: "Muestra", Precio: ptr(0)},
		},
		{
			name:      "missing price",
			input:     productoPrueba{Nombre: "Laptop"},
			wantErr:   true,
			wantTag:   "required",
			wantField: "precio",
			wantMsg:   "precio es requerido",
		},
		{
			name:      "blank name",
			input:     productoPrueba{Nombre: "   ", Precio: ptr(1)},
			wantErr:   true,
			wantTag:   "notblank",
			wantField: "nombre",
			wantMsg:   "nombre no puede estar vacío",
		},
		{
			name:      "negative stock",
			input:     productoPrueba{Nombre: "Mouse", Precio: ptr(10), Stock: -1},
			wantErr:   true,
			wantTag:   "gte",
			wantField: "stock",
			wantMsg:   "stock debe ser mayor o igual a 0",
		},
		{
			name:      "category outside set",
			input:     productoPrueba{Nombre: "Mouse", Precio: ptr(10), Categoria: "Comida"},
			wantErr:   true,
			wantTag:   "oneof",
			wantField: "categoria",
			wantMsg:   "categoria debe ser uno de: General Electrónica",
		},
		{
			name:      "name too long",
			input:     productoPrueba{Nombre: strings.Repeat("x", 201), Precio: ptr(1)},
			wantErr:   true,
			wantTag:   "max",
			wantField: "nombre",
			wantMsg:   "nombre debe tener como máximo 200 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if !tt.wantErr {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if !verr.HasTag(tt.wantTag) {
				t.Errorf("expected tag %q in %v", tt.wantTag, verr)
			}
			first := verr.Errors()[0]
			if first.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", first.Field(), tt.wantField)
			}
			if first.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", first.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_JoinsMessages(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&productoPrueba{})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(verr.Errors()), verr)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("expected joined message, got %q", verr.Error())
	}
}
