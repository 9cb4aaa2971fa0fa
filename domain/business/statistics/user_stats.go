package statistics

import (
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// UserStats rider statistics. Gender and BirthYears are nil when the city source
// has no such column ("not available"), regardless of the dataset content.
type UserStats struct {
	Subscribers int             `json:"subscribers"`
	Customers   int             `json:"customers"`
	Gender      *GenderCounts   `json:"gender,omitempty"`
	BirthYears  *BirthYearStats `json:"birth_years,omitempty"`
}

type GenderCounts struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// BirthYearStats Earliest is the oldest rider, MostRecent the youngest
type BirthYearStats struct {
	Earliest   Bound     `json:"earliest"`
	MostRecent Bound     `json:"most_recent"`
	MostCommon Mode[int] `json:"most_common"`
}

func ComputeUserStats(ds *dataset.Dataset) UserStats {
	schema := ds.Schema()

	var stats UserStats
	var genders GenderCounts
	var earliest, mostRecent Bound
	years := frequency.NewOrdered[int]()

	ds.Each(func(record trip.Record) {
		switch record.UserType {
		case trip.Subscriber:
			stats.Subscribers += 1
		case trip.Customer:
			stats.Customers += 1
		}

		switch record.Gender {
		case trip.Male:
			genders.Male += 1
		case trip.Female:
			genders.Female += 1
		}

		if !record.HasBirthYear {
			return
		}
		years.Add(record.BirthYear)
		if !earliest.Ok || record.BirthYear < earliest.Value {
			earliest = Bound{Value: record.BirthYear, Ok: true}
		}
		if !mostRecent.Ok || record.BirthYear > mostRecent.Value {
			mostRecent = Bound{Value: record.BirthYear, Ok: true}
		}
	})

	if schema.HasGender {
		stats.Gender = &genders
	}

	if schema.HasBirthYear {
		stats.BirthYears = &BirthYearStats{
			Earliest:   earliest,
			MostRecent: mostRecent,
			MostCommon: modeOf(years),
		}
	}

	return stats
}
