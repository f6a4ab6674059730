package config

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary initializes the Cloudinary client from CLOUDINARY_URL.
// Unset means the custom background feature is unavailable; the rest of
// the app does not depend on it.
func ConnectCloudinary() (*cloudinary.Cloudinary, error) {
	if GetEnv("CLOUDINARY_URL") == "" {
		log.Println("CLOUDINARY_URL not set, background uploads disabled")
		return nil, nil
	}
	return cloudinary.New()
}
