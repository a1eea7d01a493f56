package helper

import (
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildResourceFilter turns the optional resource filter fields into a
// find predicate. Empty fields impose no constraint; supplied fields
// match exactly.
func BuildResourceFilter(subject, department, semester, resourceType string) (bson.M, error) {
	filter := bson.M{}
	if subject != "" {
		filter["subject"] = subject
	}
	if department != "" {
		filter["department"] = department
	}
	if semester != "" {
		n, err := strconv.Atoi(semester)
		if err != nil {
			return nil, errors.New("semester must be a number")
		}
		filter["semester"] = n
	}
	if resourceType != "" {
		filter["resourceType"] = resourceType
	}
	return filter, nil
}
