// Package careers serves validated job openings from the bundled dataset
// with server-side filtering.
package careers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"rockgrip/models"
	"rockgrip/utils"

	"go.uber.org/zap"
)

//go:embed careers.json
var careersJSON []byte

// Service lists and filters job openings.
type Service interface {
	Openings(filter models.RoleFilter) []models.Role
	FilterOptions() models.RoleFilterOptions
}

// JSONService is the bundled-dataset implementation. Entries missing any
// critical field are dropped at load time, not surfaced to callers.
type JSONService struct {
	once  sync.Once
	roles []models.Role
}

func NewJSONService() *JSONService {
	return &JSONService{}
}

func (s *JSONService) load() {
	logger := utils.GetLogger()

	var raw []models.Role
	if err := json.Unmarshal(careersJSON, &raw); err != nil {
		logger.Error("careers: dataset parse failed", zap.Error(err))
		return
	}

	for i, role := range raw {
		if role.ID == "" || role.Title == "" || role.Department == "" || role.Location == "" || role.Type == "" {
			logger.Warn("careers: dropping invalid role", zap.Int("index", i), zap.String("id", role.ID))
			continue
		}
		s.roles = append(s.roles, role)
	}
}

// Openings returns roles matching the filter. Location, department and
// type are exact matches; the query is a case-insensitive substring search
// over title, department, location and description.
func (s *JSONService) Openings(filter models.RoleFilter) []models.Role {
	s.once.Do(s.load)

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]models.Role, 0, len(s.roles))
	for _, role := range s.roles {
		if filter.Location != "" && role.Location != filter.Location {
			continue
		}
		if filter.Department != "" && role.Department != filter.Department {
			continue
		}
		if filter.Type != "" && role.Type != filter.Type {
			continue
		}
		if query != "" && !matchesQuery(role, query) {
			continue
		}
		matched = append(matched, role)
	}
	return matched
}

// FilterOptions returns the distinct value sets for each filter, sorted.
func (s *JSONService) FilterOptions() models.RoleFilterOptions {
	s.once.Do(s.load)

	locations := map[string]bool{}
	departments := map[string]bool{}
	types := map[string]bool{}
	for _, role := range s.roles {
		locations[role.Location] = true
		departments[role.Department] = true
		types[role.Type] = true
	}
	return models.RoleFilterOptions{
		Locations:   sortedKeys(locations),
		Departments: sortedKeys(departments),
		Types:       sortedKeys(types),
	}
}

func matchesQuery(role models.Role, query string) bool {
	haystack := strings.ToLower(fmt.Sprintf("%s %s %s %s", role.Title, role.Department, role.Location, role.Description))
	return strings.Contains(haystack, query)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
