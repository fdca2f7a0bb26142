// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/factories/repository"
)

const (
	recentWindow = 30 * 24 * time.Hour
	trendMonths  = 12
)

// KPISummary runs the overview, breakdown and trend queries concurrently.
func (s *service) KPISummary(ctx context.Context) (*models.KPISummary, error) {
	now := s.now()

	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range byStatus {
		total += n
	}

	summary := &models.KPISummary{GeneratedAt: now}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		since := trendStart(now)
		if cutoff := now.Add(-2 * recentWindow); cutoff.Before(since) {
			since = cutoff
		}
		regs, err := s.repo.RegistrationsSince(gctx, since)
		if err != nil {
			return err
		}
		summary.Overview = overview(now, byStatus, total, regs)
		summary.RegistrationTrends = trends(now, regs)
		return nil
	})
	g.Go(func() error {
		rows, err := s.breakdownBy(gctx, repository.ByFactoryType, total, func(ctx context.Context, id int64) (string, error) {
			ft, err := s.lookups.GetFactoryType(ctx, id)
			if err != nil {
				return "", err
			}
			return ft.Name, nil
		})
		summary.FactoryTypes = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.breakdownBy(gctx, repository.ByServiceCategory, total, func(ctx context.Context, id int64) (string, error) {
			sc, err := s.lookups.GetServiceCategory(ctx, id)
			if err != nil {
				return "", err
			}
			return sc.Name, nil
		})
		summary.ServiceCategories = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.breakdownBy(gctx, repository.ByLocationType, total, func(ctx context.Context, id int64) (string, error) {
			lt, err := s.lookups.GetLocationType(ctx, id)
			if err != nil {
				return "", err
			}
			return lt.Name, nil
		})
		summary.LocationTypes = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.repo.CountByIndustry(gctx)
		if err != nil {
			return err
		}
		industries := make([]models.Breakdown, 0, len(rows))
		for _, row := range rows {
			industries = append(industries, models.Breakdown{Name: row.Key, Count: row.Count, Percentage: percentage(row.Count, total)})
		}
		sortBreakdown(industries)
		summary.Industries = industries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("factory kpi: %w", err)
	}
	return summary, nil
}

func (s *service) breakdownBy(ctx context.Context, dim repository.Dimension, total int64, name func(context.Context, int64) (string, error)) ([]models.Breakdown, error) {
	rows, err := s.repo.CountBy(ctx, dim)
	if err != nil {
		return nil, err
	}

	out := make([]models.Breakdown, 0, len(rows))
	for _, row := range rows {
		label, err := name(ctx, row.ID)
		if err = ignoreMissing(err); err != nil {
			return nil, err
		}
		if label == "" {
			label = "#" + strconv.FormatInt(row.ID, 10)
		}
		out = append(out, models.Breakdown{ID: row.ID, Name: label, Count: row.Count, Percentage: percentage(row.Count, total)})
	}
	sortBreakdown(out)
	return out, nil
}

func overview(now time.Time, byStatus map[string]int64, total int64, regs []models.Registration) models.OverviewKPI {
	recentFrom := now.Add(-recentWindow)
	previousFrom := now.Add(-2 * recentWindow)

	var recent, previous int64
	for _, r := range regs {
		switch {
		case !r.CreatedAt.Before(recentFrom):
			recent++
		case !r.CreatedAt.Before(previousFrom):
			previous++
		}
	}

	var growth float64
	if previous > 0 {
		growth = round2(float64(recent-previous) / float64(previous) * 100)
	}

	return models.OverviewKPI{
		TotalFactories:      total,
		ActiveFactories:     byStatus[models.StatusActive],
		InactiveFactories:   byStatus[models.StatusInactive],
		RecentRegistrations: recent,
		GrowthRate:          growth,
	}
}

// trendStart is the first instant of the oldest month in the trend window.
func trendStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month()-(trendMonths-1), 1, 0, 0, 0, 0, time.UTC)
}

// trends buckets registrations into the last trendMonths calendar months,
// oldest first. Months without registrations are reported with zero counts.
func trends(now time.Time, regs []models.Registration) []models.RegistrationTrend {
	start := trendStart(now)
	out := make([]models.RegistrationTrend, trendMonths)
	index := make(map[string]int, trendMonths)
	for i := range out {
		period := start.AddDate(0, i, 0).Format("2006-01")
		out[i].Period = period
		index[period] = i
	}

	for _, r := range regs {
		i, ok := index[r.CreatedAt.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		out[i].FactoryCount++
		switch r.Status {
		case models.StatusActive:
			out[i].ActiveFactories++
		case models.StatusInactive:
			out[i].InactiveFactories++
		}
	}
	return out
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortBreakdown(rows []models.Breakdown) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
}
