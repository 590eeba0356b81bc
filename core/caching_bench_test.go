package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/khaledelg/portfolio/schema"
)

// staticClient returns the same payload on every call.
type staticClient struct {
	data schema.ProfileData
}

func (c staticClient) FetchProfile(context.Context, string) (schema.ProfileData, error) {
	return c.data, nil
}

func benchProfile(n int) schema.ProfileData {
	data := schema.ProfileData{Username: "octocat"}
	for i := range n {
		data.Projects = append(data.Projects, schema.Project{
			Name:   fmt.Sprintf("repo-%d", i),
			Topics: []string{"go", "web", "infra"},
		})
	}
	return data
}

func newBenchFetcher(ttl time.Duration) *CachedFetcher {
	logger := &log.Logger{Handler: discard.New(), Level: log.ErrorLevel}
	return NewCachedFetcher(staticClient{data: benchProfile(100)}, "octocat", ttl, WithLogger(logger))
}

func BenchmarkGetProfileData_Hit(b *testing.B) {
	f := newBenchFetcher(time.Hour)
	ctx := context.Background()
	f.Warm(ctx)

	for b.Loop() {
		if _, err := f.GetProfileData(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetProfileData_ParallelHit(b *testing.B) {
	f := newBenchFetcher(time.Hour)
	ctx := context.Background()
	f.Warm(ctx)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := f.GetProfileData(ctx); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkGetProfileData_Miss(b *testing.B) {
	f := newBenchFetcher(0)
	ctx := context.Background()

	for b.Loop() {
		if _, err := f.GetProfileData(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectProjects(b *testing.B) {
	f := newBenchFetcher(time.Hour)
	ctx := context.Background()
	f.Warm(ctx)
	topics := []string{"infra"}

	for b.Loop() {
		if _, err := SelectProjects(ctx, f, topics, 20); err != nil {
			b.Fatal(err)
		}
	}
}
