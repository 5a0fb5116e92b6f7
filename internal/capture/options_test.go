package capture

import (
	"testing"

	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

func TestValidateOptions_Defaults(t *testing.T) {
	if err := ValidateOptions(models.DefaultCaptureOptions()); err != nil {
		t.Fatalf("default options rejected: %v", err)
	}
}

func TestValidateOptions_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CaptureOptions)
	}{
		{"unknown format", func(o *models.CaptureOptions) { o.Format = "bmp" }},
		{"unknown wait condition", func(o *models.CaptureOptions) { o.WaitUntil = "idle" }},
		{"scale out of range", func(o *models.CaptureOptions) { o.Scale = "4" }},
		{"unknown device", func(o *models.CaptureOptions) { o.Device = "nokia_3310" }},
		{"missing width", func(o *models.CaptureOptions) { o.Width = "" }},
		{"width not a number", func(o *models.CaptureOptions) { o.Width = "wide" }},
		{"height negative", func(o *models.CaptureOptions) { o.Height = "-5" }},
		{"timeout zero", func(o *models.CaptureOptions) { o.Timeout = "0" }},
		{"timeout above cap", func(o *models.CaptureOptions) { o.Timeout = "301" }},
		{"timeout not a number", func(o *models.CaptureOptions) { o.Timeout = "soon" }},
		{"delay negative", func(o *models.CaptureOptions) { o.Delay = "-1" }},
		{"delay not a number", func(o *models.CaptureOptions) { o.Delay = "later" }},
		{"scroll steps too low", func(o *models.CaptureOptions) {
			o.Scroll = true
			o.ScrollStrategy = models.ScrollProgressive
			o.ScrollSteps = 3
		}},
		{"scroll steps too high", func(o *models.CaptureOptions) {
			o.Scroll = true
			o.ScrollStrategy = models.ScrollProgressive
			o.ScrollSteps = 51
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := models.DefaultCaptureOptions()
			tc.mutate(&opts)
			err := ValidateOptions(opts)
			if !IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidateOptions_Accepted(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CaptureOptions)
	}{
		{"device preset without viewport", func(o *models.CaptureOptions) {
			o.Device = "pixel_8"
			o.Width = ""
			o.Height = ""
		}},
		{"empty height with custom device", func(o *models.CaptureOptions) { o.Height = "" }},
		{"delay above cap is clamped later", func(o *models.CaptureOptions) { o.Delay = "45" }},
		{"steps ignored outside progressive", func(o *models.CaptureOptions) { o.ScrollSteps = 3 }},
		{"timeout range edges", func(o *models.CaptureOptions) { o.Timeout = "300" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := models.DefaultCaptureOptions()
			tc.mutate(&opts)
			if err := ValidateOptions(opts); err != nil {
				t.Errorf("unexpected rejection: %v", err)
			}
		})
	}
}

func TestDevices_CatalogSorted(t *testing.T) {
	devices := Devices()
	if len(devices) == 0 {
		t.Fatal("device catalog is empty")
	}
	for i := 1; i < len(devices); i++ {
		if devices[i-1].ID >= devices[i].ID {
			t.Fatalf("catalog not sorted: %s before %s", devices[i-1].ID, devices[i].ID)
		}
	}
	for _, d := range devices {
		if d.Width <= 0 || d.Height <= 0 || d.Scale <= 0 {
			t.Errorf("preset %s has a degenerate viewport", d.ID)
		}
		if !IsKnownDevice(d.ID) {
			t.Errorf("preset %s not recognized by IsKnownDevice", d.ID)
		}
	}
	if !IsKnownDevice(models.DeviceCustom) {
		t.Error("custom must always be a known device")
	}
}
