package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/duration"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/statistics"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/filter"
)

type fakeLoader struct {
	dataset    *dataset.Dataset
	catalog    station.Catalog
	loadErr    error
	stationErr error
}

func (f *fakeLoader) Load(string) (*dataset.Dataset, error) {
	return f.dataset, f.loadErr
}

func (f *fakeLoader) LoadStations(string) (station.Catalog, error) {
	return f.catalog, f.stationErr
}

type publishedMessage struct {
	queue       string
	body        []byte
	contentType string
}

type fakePublisher struct {
	messages []publishedMessage
	err      error
}

func (f *fakePublisher) PublishMessageInQueue(_ context.Context, queueName string, message []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, publishedMessage{queue: queueName, body: message, contentType: contentType})
	return nil
}

func januaryDataset() *dataset.Dataset {
	start := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	records := []trip.Record{
		trip.NewRecord(start, start.Add(100*time.Second), 100, "A", "B", trip.Subscriber).WithBirthYear(1990),
		trip.NewRecord(start.AddDate(0, 0, 1), start, 200, "A", "C", trip.Subscriber).WithBirthYear(1985),
		trip.NewRecord(start.AddDate(0, 0, 2), start, 300, "B", "C", trip.Customer).WithBirthYear(1990),
		trip.NewRecord(start.AddDate(0, 1, 0), start, 50, "B", "C", trip.Customer).WithBirthYear(1970),
	}
	return dataset.New("chicago", dataset.Schema{HasBirthYear: true}, records)
}

func TestSessionQuery(t *testing.T) {
	loader := &fakeLoader{dataset: januaryDataset(), catalog: station.Catalog{}}
	session, err := NewSession(loader, "chicago")
	require.NoError(t, err)

	r, filtered, err := session.Query(filter.Criteria{Month: "January", Weekday: filter.All})
	require.NoError(t, err)

	assert.Equal(t, 3, filtered.Len())
	assert.Equal(t, 3, r.Records)
	assert.Equal(t, "chicago", r.City)
	assert.Equal(t, "January", r.Time.MostCommonMonth.Value)
	assert.Equal(t, 600.0, r.Duration.Total)
	assert.Equal(t, duration.Parts{Minutes: 10}, r.Duration.TotalParts)
	assert.Equal(t, duration.Parts{Minutes: 3, Seconds: 20}, r.Duration.MeanParts)
	assert.Equal(t, 2, r.User.Subscribers)
	assert.Equal(t, 1, r.User.Customers)
	assert.Nil(t, r.User.Gender)
	require.NotNil(t, r.User.BirthYears)
	assert.Equal(t, 1985, r.User.BirthYears.Earliest.Value)
	assert.Equal(t, 1990, r.User.BirthYears.MostCommon.Value)
	assert.Nil(t, r.Distance)

	// the unfiltered dataset is still available for the next query
	assert.Equal(t, 4, session.Dataset().Len())
	all, _, err := session.Query(filter.NoFilter)
	require.NoError(t, err)
	assert.Equal(t, 4, all.Records)
	assert.Equal(t, 1970, all.User.BirthYears.Earliest.Value)
}

func TestSessionQueryOnEmptySelection(t *testing.T) {
	session, err := NewSession(&fakeLoader{dataset: januaryDataset()}, "chicago")
	require.NoError(t, err)

	r, filtered, err := session.Query(filter.Criteria{Month: "June", Weekday: filter.All})
	require.NoError(t, err)

	assert.Equal(t, 0, filtered.Len())
	assert.False(t, r.Time.MostCommonMonth.Ok)
	assert.False(t, r.Station.MostCommonTrip.Ok)
	assert.False(t, r.Duration.HasMean)
	assert.Equal(t, 0, r.User.Subscribers)
	assert.False(t, r.User.BirthYears.MostCommon.Ok)
}

func TestSessionWithStationCatalog(t *testing.T) {
	catalog := station.Catalog{}
	catalog.Add(station.Station{Name: "A", Latitude: 41.88, Longitude: -87.63})
	catalog.Add(station.Station{Name: "B", Latitude: 41.89, Longitude: -87.63})

	session, err := NewSession(&fakeLoader{dataset: januaryDataset(), catalog: catalog}, "chicago")
	require.NoError(t, err)

	r, _, err := session.Query(filter.NoFilter)
	require.NoError(t, err)

	require.NotNil(t, r.Distance)
	assert.Equal(t, 1, r.Distance.Trips)
	assert.Equal(t, 3, r.Distance.Skipped)
}

func TestNewSessionErrors(t *testing.T) {
	_, err := NewSession(&fakeLoader{loadErr: dataErrors.ErrSourceUnavailable}, "chicago")
	assert.ErrorIs(t, err, dataErrors.ErrLoad)

	_, err = NewSession(&fakeLoader{dataset: januaryDataset(), stationErr: dataErrors.ErrInvalidNumber}, "chicago")
	assert.ErrorIs(t, err, dataErrors.ErrParse)
}

func TestBuildFailsOnNegativeDuration(t *testing.T) {
	start := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	ds := dataset.New("chicago", dataset.Schema{}, []trip.Record{
		trip.NewRecord(start, start, -1, "A", "B", trip.Subscriber),
	})

	_, err := Build(ds, filter.NoFilter, nil)
	assert.ErrorIs(t, err, dataErrors.ErrDomain)
}

func TestPublish(t *testing.T) {
	r, err := Build(januaryDataset(), filter.NoFilter, nil)
	require.NoError(t, err)

	publisher := &fakePublisher{}
	require.NoError(t, Publish(context.Background(), publisher, "results", r))

	require.Len(t, publisher.messages, 4)
	var queryIDs []string
	for _, message := range publisher.messages {
		assert.Equal(t, "results", message.queue)
		assert.Equal(t, "application/json", message.contentType)

		var response queryresponse.QueryResponse
		require.NoError(t, json.Unmarshal(message.body, &response))
		assert.Equal(t, "chicago", response.Metadata.City)
		assert.Equal(t, "report", response.Metadata.Stage)
		assert.Equal(t, filter.All, response.Metadata.Month)
		assert.Equal(t, 4, response.Metadata.Records)
		queryIDs = append(queryIDs, response.QueryID)
	}
	assert.Equal(t, []string{TimeQuery, StationQuery, DurationQuery, UserQuery}, queryIDs)

	var userStats statistics.UserStats
	var response queryresponse.QueryResponse
	require.NoError(t, json.Unmarshal(publisher.messages[3].body, &response))
	require.NoError(t, response.Decode(&userStats))
	assert.Equal(t, 2, userStats.Subscribers)
}

func TestPublishIncludesDistanceWhenAvailable(t *testing.T) {
	r, err := Build(januaryDataset(), filter.NoFilter, nil)
	require.NoError(t, err)
	r.Distance = &statistics.DistanceStats{Trips: 1, TotalKm: 2, MeanKm: 2, HasMean: true}

	responses, err := Responses(r)
	require.NoError(t, err)
	require.Len(t, responses, 5)
	assert.Equal(t, DistanceQuery, responses[4].GetQueryID())
	assert.Equal(t, "distance-stats", responses[4].GetMetadata().GetType())
}

func TestPublishPropagatesErrors(t *testing.T) {
	r, err := Build(januaryDataset(), filter.NoFilter, nil)
	require.NoError(t, err)

	brokerDown := errors.New("broker down")
	err = Publish(context.Background(), &fakePublisher{err: brokerDown}, "results", r)
	assert.ErrorIs(t, err, brokerDown)
}
