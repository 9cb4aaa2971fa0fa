package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/domain/business/statistics"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/filter"
	"bikeshare/loader"
	"bikeshare/loader/config"
	"bikeshare/report"
	"bikeshare/utils"
)

const (
	defaultConfigPath   = "./loader/config/config.yaml"
	defaultResultsQueue = "bikeshare-results"
	publishTimeout      = 5 * time.Second
)

// ExplorerConfig one query, taken from the environment
type ExplorerConfig struct {
	ConfigPath   string
	City         string
	Month        string
	Day          string
	RawPages     int
	RabbitURL    string
	ResultsQueue string
}

func LoadExplorerConfig() ExplorerConfig {
	return ExplorerConfig{
		ConfigPath:   utils.GetEnv("CONFIG_PATH", defaultConfigPath),
		City:         utils.GetEnv("CITY", ""),
		Month:        utils.GetEnv("MONTH", filter.All),
		Day:          utils.GetEnv("DAY", filter.All),
		RawPages:     utils.GetEnvInt("RAW_PAGES", 0),
		RabbitURL:    utils.GetEnv("RABBIT_URL", ""),
		ResultsQueue: utils.GetEnv("RESULTS_QUEUE", defaultResultsQueue),
	}
}

type Explorer struct {
	config       ExplorerConfig
	loaderConfig *config.LoaderConfig
}

func NewExplorer(explorerConfig ExplorerConfig) (*Explorer, error) {
	loaderConfig, err := config.LoadConfig(explorerConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error loading loader config: %w", err)
	}

	return &Explorer{
		config:       explorerConfig,
		loaderConfig: loaderConfig,
	}, nil
}

// Run validates the query, computes every statistic group and logs it. Results are also
// published in RabbitMQ when a RABBIT_URL is configured.
func (e *Explorer) Run(ctx context.Context) error {
	criteria, err := filter.ParseCriteria(e.config.Month, e.config.Day, e.loaderConfig.Months)
	if err != nil {
		logAcceptedNames(err, e.loaderConfig.Months)
		return err
	}

	session, err := report.NewSession(loader.New(e.loaderConfig), e.config.City)
	if err != nil {
		return err
	}

	r, filtered, err := session.Query(criteria)
	if err != nil {
		return err
	}

	logReport(r)
	logRawPages(filtered, e.config.RawPages)

	if e.config.RabbitURL == "" {
		return nil
	}
	return e.publish(ctx, r)
}

func logAcceptedNames(err error, allowedMonths []string) {
	switch {
	case errors.Is(err, dataErrors.ErrInvalidMonth):
		log.Errorf("[explorer] %s. Accepted months: %s or %s", err.Error(), strings.Join(filter.AcceptedMonths(allowedMonths), ", "), filter.All)
	case errors.Is(err, dataErrors.ErrInvalidWeekday):
		log.Errorf("[explorer] %s. Accepted weekdays: %s or %s", err.Error(), strings.Join(filter.AcceptedWeekdays(), ", "), filter.All)
	}
}

func (e *Explorer) publish(ctx context.Context, r *report.Report) error {
	rabbitMQ, err := communication.NewRabbitMQ(e.config.RabbitURL)
	if err != nil {
		return err
	}

	defer func(rabbitMQ *communication.RabbitMQ) {
		err := rabbitMQ.Close()
		if err != nil {
			log.Errorf("[explorer] %s", err.Error())
		}
	}(rabbitMQ)

	err = rabbitMQ.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{
		communication.DefaultResultsQueue(e.config.ResultsQueue),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = report.Publish(ctx, rabbitMQ, e.config.ResultsQueue, r)
	if err != nil {
		return err
	}

	log.Infof("[explorer][queue: %s][status: OK] results published", e.config.ResultsQueue)
	return nil
}

func logReport(r *report.Report) {
	prefix := fmt.Sprintf("[city: %s]%s", r.City, r.Criteria)
	log.Infof("%s %d trips selected", prefix, r.Records)

	log.Infof("%s most common month: %s", prefix, describeMode(r.Time.MostCommonMonth))
	log.Infof("%s most common weekday: %s", prefix, describeMode(r.Time.MostCommonWeekday))
	log.Infof("%s most common start hour: %s", prefix, describeMode(r.Time.MostCommonHour))

	log.Infof("%s most common start station: %s", prefix, describeMode(r.Station.MostCommonStart))
	log.Infof("%s most common end station: %s", prefix, describeMode(r.Station.MostCommonEnd))
	log.Infof("%s most common trip: %s", prefix, describeMode(r.Station.MostCommonTrip))

	log.Infof("%s total travel time: %s", prefix, r.Duration.TotalParts)
	if r.Duration.HasMean {
		log.Infof("%s mean travel time: %s", prefix, r.Duration.MeanParts)
	} else {
		log.Infof("%s mean travel time: no data", prefix)
	}

	log.Infof("%s subscribers: %d, customers: %d", prefix, r.User.Subscribers, r.User.Customers)
	if r.User.Gender == nil {
		log.Infof("%s gender: not available", prefix)
	} else {
		log.Infof("%s male: %d, female: %d", prefix, r.User.Gender.Male, r.User.Gender.Female)
	}
	if r.User.BirthYears == nil {
		log.Infof("%s birth year: not available", prefix)
	} else {
		log.Infof("%s earliest birth year: %s, most recent: %s, most common: %s", prefix,
			describeBound(r.User.BirthYears.Earliest),
			describeBound(r.User.BirthYears.MostRecent),
			describeMode(r.User.BirthYears.MostCommon))
	}

	if r.Distance != nil {
		log.Infof("%s distance between stations: %.2f km over %d trips (%d without known stations)",
			prefix, r.Distance.TotalKm, r.Distance.Trips, r.Distance.Skipped)
	}
}

// logRawPages logs up to pages pages of raw records
func logRawPages(ds *dataset.Dataset, pages int) {
	for page := 0; page < pages && page < ds.PageCount(dataset.DefaultPageSize); page++ {
		offset := page * dataset.DefaultPageSize
		for i, record := range ds.Page(offset, dataset.DefaultPageSize) {
			log.Infof("[raw][row: %d] %s | %s | %.0fs | %s | %s", offset+i, record.StartTime.Format(time.DateTime), record.EndTime.Format(time.DateTime), record.Duration, record.Trip(), record.UserType)
		}
	}
}

func describeMode[T any](mode statistics.Mode[T]) string {
	if !mode.Ok {
		return "no data"
	}
	return fmt.Sprintf("%v (%d trips)", mode.Value, mode.Count)
}

func describeBound(bound statistics.Bound) string {
	if !bound.Ok {
		return "no data"
	}
	return fmt.Sprintf("%d", bound.Value)
}
