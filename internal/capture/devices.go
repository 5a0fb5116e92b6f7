package capture

import (
	"sort"

	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// Device is a named viewport preset understood by the capture service.
// When a preset is selected the service derives the viewport itself, so
// explicit width and height are never sent alongside it.
type Device struct {
	ID     string
	Label  string
	Width  int
	Height int
	Scale  float64
}

var deviceCatalog = map[string]Device{
	"iphone_se":      {ID: "iphone_se", Label: "iPhone SE", Width: 375, Height: 667, Scale: 2},
	"iphone_15":      {ID: "iphone_15", Label: "iPhone 15", Width: 393, Height: 852, Scale: 3},
	"iphone_15_pro":  {ID: "iphone_15_pro", Label: "iPhone 15 Pro", Width: 393, Height: 852, Scale: 3},
	"pixel_8":        {ID: "pixel_8", Label: "Google Pixel 8", Width: 412, Height: 915, Scale: 3},
	"galaxy_s23":     {ID: "galaxy_s23", Label: "Samsung Galaxy S23", Width: 360, Height: 780, Scale: 3},
	"ipad_mini":      {ID: "ipad_mini", Label: "iPad Mini", Width: 768, Height: 1024, Scale: 2},
	"ipad_pro_12_9":  {ID: "ipad_pro_12_9", Label: "iPad Pro 12.9\"", Width: 1024, Height: 1366, Scale: 2},
	"macbook_air_13": {ID: "macbook_air_13", Label: "MacBook Air 13\"", Width: 1280, Height: 832, Scale: 2},
	"macbook_pro_16": {ID: "macbook_pro_16", Label: "MacBook Pro 16\"", Width: 1536, Height: 960, Scale: 2},
}

// Devices returns the preset catalog sorted by ID
func Devices() []Device {
	devices := make([]Device, 0, len(deviceCatalog))
	for _, d := range deviceCatalog {
		devices = append(devices, d)
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })
	return devices
}

// DeviceByID looks up a preset by its identifier
func DeviceByID(id string) (Device, bool) {
	d, ok := deviceCatalog[id]
	return d, ok
}

// IsKnownDevice reports whether id names a preset or the custom viewport
func IsKnownDevice(id string) bool {
	if id == "" || id == models.DeviceCustom {
		return true
	}
	_, ok := deviceCatalog[id]
	return ok
}
