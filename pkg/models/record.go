package models

import "time"

// NamedConfiguration is a full form snapshot saved under a user-chosen name.
// Records live inside a single JSON mapping name -> record under one storage
// key; the configuration store is the sole writer of that key.
type NamedConfiguration struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Selected  Selection `json:"selectedSchemas"`
	Data      FormData  `json:"data"`
}

// NamedPreset is the business-identity subset of a configuration: only the
// organization and website fields. Presets use their own storage key,
// independent from configurations, and double as the file interchange format.
type NamedPreset struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Timestamp    time.Time          `json:"timestamp"`
	Organization OrganizationFields `json:"organization"`
	Website      WebSiteFields      `json:"website"`
}
