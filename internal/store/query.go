package store

import (
	"github.com/MKhiriev/go-pet-adopt/models"
	"go.mongodb.org/mongo-driver/bson"
)

// BuildPetFilter translates a parsed listing query into a MongoDB filter
// document. Filters combine with logical AND; absent parameters add no
// clause.
//
// The `search` term uses the collection's text index via $text, so match
// and ranking semantics are whatever the index provides.
func BuildPetFilter(query models.PetListQuery) bson.D {
	filter := bson.D{}

	if query.Search != "" {
		filter = append(filter, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: query.Search}}})
	}
	if query.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: query.Category})
	}
	if query.Size != "" {
		filter = append(filter, bson.E{Key: "size", Value: query.Size})
	}
	if query.MaxAge != nil {
		filter = append(filter, bson.E{Key: "age", Value: bson.D{{Key: "$lte", Value: *query.MaxAge}}})
	}
	if query.IsVaccinated != nil {
		filter = append(filter, bson.E{Key: "isVaccinated", Value: *query.IsVaccinated})
	}
	if query.IsSterilized != nil {
		filter = append(filter, bson.E{Key: "isSterilized", Value: *query.IsSterilized})
	}
	if query.IsAdopted != nil {
		filter = append(filter, bson.E{Key: "isAdopted", Value: *query.IsAdopted})
	}

	return filter
}

// BuildPetSort translates the requested ordering into a MongoDB sort
// document. Unrecognized orderings fall back to creation time, newest first.
func BuildPetSort(query models.PetListQuery) bson.D {
	switch query.Sort {
	case models.SortName:
		return bson.D{{Key: "name", Value: 1}}
	case models.SortAge:
		return bson.D{{Key: "age", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
