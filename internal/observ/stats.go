package observ

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNoSamples is returned when statistics are requested for an empty Stats.
var ErrNoSamples = errors.New("no samples")

// Stats accumulates duration samples of a repeated operation.
type Stats struct {
	Name    string
	samples []time.Duration
}

// Add records one sample.
func (s *Stats) Add(d time.Duration) {
	s.samples = append(s.samples, d)
}

// Measure runs fn n times, recording each run as a sample.
func (s *Stats) Measure(n int, fn func()) {
	for range n {
		start := time.Now()
		fn()
		s.Add(time.Since(start))
	}
}

// Len returns the number of samples.
func (s *Stats) Len() int { return len(s.samples) }

// Mean returns the arithmetic mean of the samples.
func (s *Stats) Mean() (time.Duration, error) {
	if len(s.samples) == 0 {
		return 0, ErrNoSamples
	}
	var sum float64
	for _, d := range s.samples {
		sum += float64(d)
	}
	return time.Duration(sum / float64(len(s.samples))), nil
}

// StdDev returns the sample standard deviation, 0 for a single sample.
func (s *Stats) StdDev() (time.Duration, error) {
	mean, err := s.Mean()
	if err != nil {
		return 0, err
	}
	if len(s.samples) == 1 {
		return 0, nil
	}
	var sq float64
	for _, d := range s.samples {
		diff := float64(d - mean)
		sq += diff * diff
	}
	return time.Duration(math.Sqrt(sq / float64(len(s.samples)-1))), nil
}

// GeoMean returns the geometric mean of the samples. Non-positive samples
// are counted as one nanosecond.
func (s *Stats) GeoMean() (time.Duration, error) {
	if len(s.samples) == 0 {
		return 0, ErrNoSamples
	}
	var logSum float64
	for _, d := range s.samples {
		logSum += math.Log(float64(max(d, 1)))
	}
	return time.Duration(math.Exp(logSum / float64(len(s.samples)))), nil
}

// Summary is a point-in-time view of a Stats.
type Summary struct {
	Name    string        `json:"name" msgpack:"name"`
	N       int           `json:"n" msgpack:"n"`
	Mean    time.Duration `json:"mean_ns" msgpack:"mean_ns"`
	StdDev  time.Duration `json:"stddev_ns" msgpack:"stddev_ns"`
	GeoMean time.Duration `json:"geomean_ns" msgpack:"geomean_ns"`
}

// Summarize computes all statistics at once.
func (s *Stats) Summarize() (Summary, error) {
	mean, err := s.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	sd, err := s.StdDev()
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	geo, err := s.GeoMean()
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return Summary{Name: s.Name, N: len(s.samples), Mean: mean, StdDev: sd, GeoMean: geo}, nil
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("%-16s n=%-5d mean=%-12v stddev=%-12v geomean=%v", s.Name, s.N, s.Mean, s.StdDev, s.GeoMean)
}
