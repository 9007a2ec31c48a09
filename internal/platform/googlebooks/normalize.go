package googlebooks

import (
	"strconv"
	"strings"

	"booktracker/internal/entity"
)

// normalize flattens a volumes payload into SearchResult values. Only this
// file knows the provider's field layout; the rest of the system sees
// entity.SearchResult.
func normalize(res volumesResponse) []entity.SearchResult {
	results := make([]entity.SearchResult, 0, len(res.Items))

	for _, item := range res.Items {
		info := item.VolumeInfo

		identifiers := make([]string, 0, len(info.IndustryIdentifiers))
		for _, id := range info.IndustryIdentifiers {
			identifiers = append(identifiers, id.Type+": "+id.Identifier)
		}

		results = append(results, entity.SearchResult{
			ISBN:            strings.Join(identifiers, ", "),
			Title:           info.Title,
			Author:          strings.Join(info.Authors, ", "),
			PublicationYear: parseYear(info.PublishedDate),
		})
	}

	return results
}

// parseYear reads the leading four characters of a published date ("2001-05-01"
// -> 2001). Shorter strings are parsed whole; anything non-numeric yields nil.
func parseYear(date string) *int {
	if date == "" {
		return nil
	}
	prefix := date
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	year, err := strconv.Atoi(prefix)
	if err != nil {
		return nil
	}
	return &year
}
