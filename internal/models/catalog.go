// internal/models/catalog.go
package models

import "time"

// Placeholder images substituted whenever image_url is blank at write time.
const (
	OfferPlaceholderImage     = "https://images.pexels.com/photos/1201996/pexels-photo-1201996.jpeg?auto=compress&cs=tinysrgb&w=400"
	BoxPlaceholderImage       = "https://images.pexels.com/photos/4009402/pexels-photo-4009402.jpeg?auto=compress&cs=tinysrgb&w=400"
	ReceiverPlaceholderImage  = "https://images.pexels.com/photos/442150/pexels-photo-442150.jpeg?auto=compress&cs=tinysrgb&w=400"
	AccessoryPlaceholderImage = "https://images.pexels.com/photos/159304/network-cable-ethernet-computer-159304.jpeg?auto=compress&cs=tinysrgb&w=400"
)

// Table names match the hosted catalog schema; the changefeed keys its topics
// on them.
const (
	TableOffers      = "iptv_offers"
	TableBoxes       = "android_boxes"
	TableReceivers   = "satellite_receivers"
	TableAccessories = "accessories"
	TableSettings    = "service_settings"
)

// IPTVOffer is a downloadable IPTV application listing. Offers carry no
// availability flag; they are always orderable.
type IPTVOffer struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null"`
	Price       string `json:"price" gorm:"size:100"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" gorm:"type:text"`
	DownloadURL string `json:"download_url" gorm:"type:text;not null"`
	AppName     string `json:"app_name" gorm:"size:100;not null;index"`
}

func (IPTVOffer) TableName() string { return TableOffers }

type AndroidBox struct {
	BaseModel
	Name           string `json:"name" gorm:"size:255;not null"`
	Price          string `json:"price" gorm:"size:100;not null"`
	Description    string `json:"description" gorm:"type:text"`
	ImageURL       string `json:"image_url" gorm:"type:text"`
	PurchaseURL    string `json:"purchase_url" gorm:"type:text;not null"`
	Specifications string `json:"specifications" gorm:"type:text"`
	IsAvailable    bool   `json:"is_available" gorm:"default:true"`
}

func (AndroidBox) TableName() string { return TableBoxes }

type SatelliteReceiver struct {
	BaseModel
	Name           string `json:"name" gorm:"size:255;not null"`
	Price          string `json:"price" gorm:"size:100;not null"`
	Description    string `json:"description" gorm:"type:text"`
	ImageURL       string `json:"image_url" gorm:"type:text"`
	PurchaseURL    string `json:"purchase_url" gorm:"type:text;not null"`
	Specifications string `json:"specifications" gorm:"type:text"`
	IsAvailable    bool   `json:"is_available" gorm:"default:true"`
}

func (SatelliteReceiver) TableName() string { return TableReceivers }

type Accessory struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null"`
	Price       string `json:"price" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" gorm:"type:text"`
	PurchaseURL string `json:"purchase_url" gorm:"type:text;not null"`
	Category    string `json:"category" gorm:"size:100;not null;index"`
	IsAvailable bool   `json:"is_available" gorm:"default:true"`
}

func (Accessory) TableName() string { return TableAccessories }

// Accessors shared by the query pipeline and the outbound redirect handler.
// Every catalog type satisfies query.Record through these.

func (o IPTVOffer) DisplayName() string    { return o.Name }
func (o IPTVOffer) DisplayPrice() string   { return o.Price }
func (o IPTVOffer) SearchText() []string   { return []string{o.Name, o.Description, o.AppName} }
func (o IPTVOffer) Available() bool        { return true }
func (o IPTVOffer) CategoryLabel() string  { return o.AppName }
func (o IPTVOffer) CreatedTime() time.Time { return o.CreatedAt }
func (o IPTVOffer) ActionURL() string      { return o.DownloadURL }

func (b AndroidBox) DisplayName() string  { return b.Name }
func (b AndroidBox) DisplayPrice() string { return b.Price }
func (b AndroidBox) SearchText() []string {
	return []string{b.Name, b.Description, b.Specifications}
}
func (b AndroidBox) Available() bool        { return b.IsAvailable }
func (b AndroidBox) CategoryLabel() string  { return "" }
func (b AndroidBox) CreatedTime() time.Time { return b.CreatedAt }
func (b AndroidBox) ActionURL() string      { return b.PurchaseURL }

func (r SatelliteReceiver) DisplayName() string  { return r.Name }
func (r SatelliteReceiver) DisplayPrice() string { return r.Price }
func (r SatelliteReceiver) SearchText() []string {
	return []string{r.Name, r.Description, r.Specifications}
}
func (r SatelliteReceiver) Available() bool        { return r.IsAvailable }
func (r SatelliteReceiver) CategoryLabel() string  { return "" }
func (r SatelliteReceiver) CreatedTime() time.Time { return r.CreatedAt }
func (r SatelliteReceiver) ActionURL() string      { return r.PurchaseURL }

func (a Accessory) DisplayName() string  { return a.Name }
func (a Accessory) DisplayPrice() string { return a.Price }
func (a Accessory) SearchText() []string {
	return []string{a.Name, a.Description, a.Category}
}
func (a Accessory) Available() bool        { return a.IsAvailable }
func (a Accessory) CategoryLabel() string  { return a.Category }
func (a Accessory) CreatedTime() time.Time { return a.CreatedAt }
func (a Accessory) ActionURL() string      { return a.PurchaseURL }
