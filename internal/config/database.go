// internal/config/database.go
package config

import (
	"net/url"
)

// DSN combines the service endpoint URL with the service key. The key is the
// database credential; it never appears in the endpoint URL itself so it can
// be rotated independently.
func (c *CatalogConfig) DSN() string {
	u, err := url.Parse(c.ServiceURL)
	if err != nil {
		return c.ServiceURL
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.ServiceKey)

	return u.String()
}
