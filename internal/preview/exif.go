package preview

import (
	exif "github.com/dsoprea/go-exif/v3"
)

// ExifInfo is the subset of EXIF metadata shown on the image info card.
type ExifInfo struct {
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	DateTime    string `json:"date_time,omitempty"`
	Software    string `json:"software,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	HasGPS      bool   `json:"has_gps"`
}

// ReadExif extracts camera metadata from JPEG bytes. It returns nil when the
// image carries no readable EXIF block.
func ReadExif(data []byte) *ExifInfo {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		return nil
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil
	}

	info := &ExifInfo{}
	for _, entry := range entries {
		value := entry.Formatted
		switch entry.TagName {
		case "Make":
			info.Make = value
		case "Model":
			info.Model = value
		case "DateTimeOriginal":
			info.DateTime = value
		case "DateTime":
			if info.DateTime == "" {
				info.DateTime = value
			}
		case "Software":
			info.Software = value
		case "Orientation":
			info.Orientation = value
		case "GPSLatitude", "GPSLongitude":
			info.HasGPS = true
		}
	}

	if *info == (ExifInfo{}) {
		return nil
	}
	return info
}
