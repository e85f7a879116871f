package controllers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price accepts a JSON number or a numeric string such as "5.5".
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	var v float64
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", s)
		}
		v = f
	} else if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid price %s", data)
	}
	*p = Price(v)
	return nil
}

func (p *Price) float64Ptr() *float64 {
	if p == nil {
		return nil
	}
	v := float64(*p)
	return &v
}
