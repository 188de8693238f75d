package autocom

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

const sedesKey = "autocomplete:sedes"

// AddSedeToAutocorrect stores a sede for name suggestions. Members carry both
// id and name, `|`-separated.
func AddSedeToAutocorrect(client *redis.Client, sedeID, nombre string) error {
	ctx := context.Background()
	member := fmt.Sprintf("%s|%s", sedeID, nombre)

	_, err := client.ZAdd(ctx, sedesKey, redis.Z{Score: 0, Member: member}).Result()
	if err != nil {
		return fmt.Errorf("failed to add sede to autocomplete: %v", err)
	}

	log.Printf("Sede added for autocorrect: %s (ID: %s)", nombre, sedeID)
	return nil
}

// RemoveSedeFromAutocorrect drops every member carrying the sede's id, so a
// renamed sede does not leave suggestions with the old name behind.
func RemoveSedeFromAutocorrect(client *redis.Client, sedeID string) error {
	ctx := context.Background()

	members, err := client.ZRange(ctx, sedesKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch autocomplete members: %v", err)
	}

	stale := staleMembers(members, sedeID)
	if len(stale) == 0 {
		return nil
	}
	if err := client.ZRem(ctx, sedesKey, stale...).Err(); err != nil {
		return fmt.Errorf("failed to remove stale autocomplete members: %v", err)
	}
	return nil
}

// staleMembers picks the members whose id segment matches sedeID.
func staleMembers(members []string, sedeID string) []interface{} {
	prefix := sedeID + "|"
	var out []interface{}
	for _, m := range members {
		if strings.HasPrefix(m, prefix) {
			out = append(out, m)
		}
	}
	return out
}

// FetchSedeSuggestions returns up to limit {id, nombre} suggestions whose
// name contains the query, case-insensitively.
func FetchSedeSuggestions(client *redis.Client, query string, limit int) ([]map[string]string, error) {
	ctx := context.Background()

	results, err := client.ZRange(ctx, sedesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch autocomplete suggestions: %v", err)
	}

	term := strings.ToLower(strings.TrimSpace(query))
	suggestions := []map[string]string{}
	for _, result := range results {
		parts := strings.SplitN(result, "|", 2)
		if len(parts) != 2 {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(parts[1]), term) {
			continue
		}
		suggestions = append(suggestions, map[string]string{
			"id":     parts[0],
			"nombre": parts[1],
		})
		if len(suggestions) >= limit {
			break
		}
	}

	return suggestions, nil
}
