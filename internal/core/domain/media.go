package domain

// UnknownYear is the year value the catalog reports when it has none.
const UnknownYear = "Unknown"

// DefaultPlaceholderImage is shown for items without an image URL.
const DefaultPlaceholderImage = "/static/images/placeholder.png"

const noDescription = "No description available."

// MediaType identifies the kind of catalog entry, e.g. "movie" or "book".
type MediaType string

// Built-in media types. The set offered to users comes from Settings.MediaTypes.
const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
	MediaBook  MediaType = "book"
	MediaMusic MediaType = "music"
)

// DefaultMediaTypes returns the media types offered when none are configured.
func DefaultMediaTypes() []MediaType {
	return []MediaType{MediaMovie, MediaTV, MediaBook, MediaMusic}
}

// String returns the string representation.
func (t MediaType) String() string {
	return string(t)
}

// ContainsMediaType reports whether t is one of types.
func ContainsMediaType(types []MediaType, t MediaType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// ResultItem is a single catalog entry returned by search or recommendation.
type ResultItem struct {
	// ID is the catalog's opaque identifier.
	ID string

	// Title is the display title.
	Title string

	// Creator is the director, author, artist, etc.
	Creator string

	// Year is the release year as reported by the catalog. May be "Unknown".
	Year string

	// ImageURL is optional; see Image.
	ImageURL string

	// Type is the media type tag.
	Type MediaType

	// Description is only populated for a selected item.
	Description string
}

// YearLabel returns "(year)", or "" when the year is empty or unknown.
func (i ResultItem) YearLabel() string {
	if i.Year == "" || i.Year == UnknownYear {
		return ""
	}
	return "(" + i.Year + ")"
}

// Byline returns the creator followed by the year label.
func (i ResultItem) Byline() string {
	label := i.YearLabel()
	switch {
	case i.Creator == "":
		return label
	case label == "":
		return i.Creator
	default:
		return i.Creator + " " + label
	}
}

// Image returns the item's image URL, or placeholder when it has none.
func (i ResultItem) Image(placeholder string) string {
	if i.ImageURL != "" {
		return i.ImageURL
	}
	if placeholder == "" {
		return DefaultPlaceholderImage
	}
	return placeholder
}

// DescriptionOrDefault returns the description or a fixed fallback text.
func (i ResultItem) DescriptionOrDefault() string {
	if i.Description == "" {
		return noDescription
	}
	return i.Description
}

// RecommendationEdge is a recommended item and the label explaining
// its relationship to the selected item.
type RecommendationEdge struct {
	Item             ResultItem
	RelationshipType string
}

// CrossMedia reports whether the recommended item is a different media
// type than the item it was recommended for.
func (e RecommendationEdge) CrossMedia(selected ResultItem) bool {
	return e.Item.Type != selected.Type
}

// Recommendations is the answer to a recommendation request.
// Edges keep the order the catalog returned them in.
type Recommendations struct {
	Selected ResultItem
	Edges    []RecommendationEdge
}

// Count returns the number of recommended items.
func (r *Recommendations) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Edges)
}
