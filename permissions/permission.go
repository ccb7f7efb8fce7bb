package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes one route pattern. Skip routes are public, Optional routes accept
// anonymous callers but still attach a session when a token is sent, and a non-empty
// Permissions list restricts the route to those roles.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
	Optional    bool     `json:"optional"`
}

// Allows reports whether role may call the route. Routes without a role list are open to
// any signed-in user.
func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	once  sync.Once
	index map[string]Permission
}

func key(method, path string) string {
	return method + " " + path
}

// Find looks up the chi route pattern (e.g. "/v1/rooms/{id}"). Unknown routes get the
// zero Permission, which requires a session and no particular role.
func (r *PermissionData) Find(path, method string) Permission {
	r.once.Do(r.buildIndex)

	return r.index[key(method, path)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		k := key(endpoint.Method, endpoint.Path)
		if _, dup := r.index[k]; dup {
			log.Warn().Str("route", k).Msg("duplicate permission entry, keeping the first")

			continue
		}

		r.index[k] = endpoint
	}
}

// Get decodes the embedded permissions.json.
func Get() *PermissionData {
	return parse(permissionsData)
}

func parse(data []byte) *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	permissions.once.Do(permissions.buildIndex)

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded permissions")

	return &permissions
}
