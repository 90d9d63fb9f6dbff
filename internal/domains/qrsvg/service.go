package qrsvg

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// quietZone is the blank border around the code, in modules.
const quietZone = 4

type Service struct {
	level qrcode.RecoveryLevel
}

func NewService() *Service {
	return &Service{
		level: qrcode.Medium,
	}
}

// Fragment encodes the payload and renders it as a single-line <svg>
// element wrapping one path, ready for inline embedding in a page.
func (s *Service) Fragment(payload string) (fragment string, err error) {
	code, err := qrcode.New(payload, s.level)
	if err != nil {
		return fragment, fmt.Errorf("Fragment: %w", err)
	}

	code.DisableBorder = true

	var (
		bitmap = code.Bitmap()
		size   = len(bitmap) + 2*quietZone
		path   strings.Builder
	)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&path, "M%d %dh1v1h-1z", x+quietZone, y+quietZone)
			}
		}
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges"><path fill="#000000" d="%s"/></svg>`,
		size, size, path.String(),
	), nil
}

// Document renders the payload as a standalone SVG file: the XML
// declaration on the first line, the fragment on the second.
func (s *Service) Document(payload string) (document string, err error) {
	fragment, err := s.Fragment(payload)
	if err != nil {
		return document, fmt.Errorf("Document: %w", err)
	}

	return xmlHeader + "\n" + fragment + "\n", nil
}
