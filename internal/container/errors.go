package container

import "errors"

// Error taxonomy from spec.md §7. These are sentinels, not type hierarchies —
// wrap with fmt.Errorf("...: %w", ErrX) and match with errors.Is.
var (
	ErrInvalidSignature = errors.New("container: input does not begin with frif magic")
	ErrInvalidMetadata  = errors.New("container: unrecognized colorspace or variant bits")
	ErrMalformedSegment = errors.New("container: unknown segment marker or truncated stream")
	ErrUnsupportedColor = errors.New("container: bitmap color format not in {8-bit Luma, 8-bit RGB}")
)
