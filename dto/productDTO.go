package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Price accepts a JSON number or a numeric string.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(f) {
			return fmt.Errorf("harga must be a number")
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("harga must be a number")
	}
	*p = Price(f)
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ProductRequest serves create, update and delete; absent fields stay nil.
type ProductRequest struct {
	ID        string  `json:"id"`
	Nama      *string `json:"nama"`
	Harga     *Price  `json:"harga"`
	Gambar    *string `json:"gambar"`
	Kategori  *string `json:"kategori"`
	Deskripsi *string `json:"deskripsi"`
}

type ProductResponse struct {
	ID        string    `json:"id"`
	Nama      string    `json:"nama"`
	Harga     float64   `json:"harga"`
	Gambar    string    `json:"gambar"`
	Kategori  string    `json:"kategori"`
	Deskripsi string    `json:"deskripsi"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProductMessageResponse struct {
	Message string `json:"message"`
	ProductResponse
}
