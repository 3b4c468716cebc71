package providers

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/sync/errgroup"
	"weatherdash.app/errors"
	"weatherdash.app/models"
)

// fetchCombined runs the two independent fetches concurrently under a single
// deadline and joins them fail-fast: the first error cancels the group and
// surfaces immediately, the still-pending branch is abandoned. No partial
// result ever escapes.
func fetchCombined(
	ctx context.Context,
	timeout time.Duration,
	fetchCurrent func(context.Context, string) (*models.CurrentWeather, error),
	fetchForecast func(context.Context, string) (*models.ForecastBundle, error),
	city string,
) (*models.WeatherData, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		current  *models.CurrentWeather
		forecast *models.ForecastBundle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = fetchCurrent(gctx, city)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = fetchForecast(gctx, city)
		return err
	})

	if err := g.Wait(); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.NewUpstreamTimeoutError("weather fetch deadline exceeded", err)
		}
		return nil, err
	}

	return &models.WeatherData{
		Current: *current,
		Hourly:  forecast.Hourly,
		Daily:   forecast.Daily,
	}, nil
}
