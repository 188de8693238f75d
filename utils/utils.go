package utils

import (
	"context"
	rndm "math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// --- Identifier normalization ---

// NormalizeID coerces the identifier shapes seen at the boundary (a plain
// string, a wrapped {"_id": ...} / {"$oid": ...} / {"id": ...} object) into a
// trimmed string. Returns "" for anything unusable. Nothing past the boundary
// should ever branch on identifier shape.
func NormalizeID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case map[string]interface{}:
		for _, key := range []string{"_id", "$oid", "id", "escenarioId", "escenarioid"} {
			if inner, ok := id[key]; ok {
				if s := NormalizeID(inner); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// --- Loose numeric coercion ---

// ToNumber mirrors the boundary's loose numeric handling: JSON numbers and
// numeric strings pass through, anything else becomes the fallback.
func ToNumber(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// SplitCSV takes a comma-separated string and returns trimmed non-empty parts.
func SplitCSV(input string) []string {
	if input == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(input, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// FindAndDecode runs a Find and decodes every document into T.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
