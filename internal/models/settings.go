// internal/models/settings.go
package models

import "github.com/lib/pq"

// ServiceSettings is the single global settings row: the display name of the
// service and the ordered list of app category labels offered in the admin
// panel. Exactly one logical instance exists; the settings service creates it
// on first save.
type ServiceSettings struct {
	BaseModel
	ServiceName   string         `json:"service_name" gorm:"size:255;not null"`
	AvailableApps pq.StringArray `json:"available_apps" gorm:"type:text[]"`
}

func (ServiceSettings) TableName() string { return TableSettings }

const DefaultServiceName = "TechnSat chez Wassim"

// DefaultAvailableApps seeds available_apps and backs the unconfigured
// fallback. Order is the order the selection control shows.
func DefaultAvailableApps() pq.StringArray {
	return pq.StringArray{
		"MTNPlus", "Orca Plus 4K", "Orca Pro+", "ESPRO", "ZEBRA", "OTT MTN EXTREAM",
		"Best IPTV HD", "STRONG 4K", "BD TV", "24 Live IPTV Page", "Pro Max TV Player",
		"X2 Smart", "Android Media Box", "Crazy TV Max", "شاهد BeIN", "AIS PLAY",
		"MATADOR", "MB Sat OTT-Pro TV", "NEO TV PRO", "COMBO IPTV", "MY HD PREMIER",
		"Downloader", "MAX OTT", "YouTube", "ULTRA IPTV", "MTN OTT STORE", "SAM IPTV",
		"BUENO TV", "M TV", "AP-LIVE WORLD CHANNELS",
	}
}

// DefaultServiceSettings is what callers see while the catalog service is
// unconfigured or the row does not exist yet.
func DefaultServiceSettings() ServiceSettings {
	return ServiceSettings{
		ServiceName:   DefaultServiceName,
		AvailableApps: DefaultAvailableApps(),
	}
}
