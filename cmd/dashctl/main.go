// Package main provides dashctl, a command line client for the AI Deploy
// inference endpoints.
//
// Usage:
//
//	dashctl detect photo.jpg --out annotated.png
//	dashctl classify photo.jpg --format markdown
//	dashctl render photo.jpg --detections result.json
//
// See --help for all available options.
package main

func main() {
	Execute()
}
