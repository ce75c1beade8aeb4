package main

import (
	"fmt"
	"strconv"
	"strings"

	"pgnest/internal/domain"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid tenant id %q", s)
	}
	return id, nil
}

func splitMonths(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseMethod(s string) domain.PaymentMethod {
	m := domain.PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case domain.MethodCash, domain.MethodUPI, domain.MethodBankTransfer, domain.MethodCard:
		return m
	}
	return domain.MethodCash
}
