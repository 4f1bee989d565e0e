package ocr

import (
	"Yoriview-Backend/domain"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type (
	scriptResult struct {
		StoreName  string       `json:"storeName"`
		Address    string       `json:"address"`
		MenuItems  []scriptItem `json:"menuItems"`
		TotalPrice amount       `json:"totalPrice"`
	}

	scriptItem struct {
		Name  string `json:"name"`
		Price amount `json:"price"`
	}

	// amount accepts 12000, 12000.0, "12000", "12,000원" and null.
	amount int
)

func (a *amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	s := string(b)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.NewReplacer(",", "", " ", "", "원", "").Replace(unquoted)
		if s == "" {
			*a = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s", b)
	}
	*a = amount(math.Round(f))
	return nil
}

func parseResult(raw []byte) (domain.OcrProcessResponse, error) {
	var result scriptResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.OcrProcessResponse{}, err
	}

	res := domain.OcrProcessResponse{
		RestaurantName: strings.TrimSpace(result.StoreName),
		Address:        strings.TrimSpace(result.Address),
		Items:          make([]domain.OcrMenuItem, 0, len(result.MenuItems)),
		Total:          int(result.TotalPrice),
	}
	if res.RestaurantName == "" {
		res.RestaurantName = domain.DefaultOcrRestaurantName
	}
	for _, item := range result.MenuItems {
		res.Items = append(res.Items, domain.OcrMenuItem{
			Name:  strings.TrimSpace(item.Name),
			Price: int(item.Price),
		})
	}
	return res, nil
}
