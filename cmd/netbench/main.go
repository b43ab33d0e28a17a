// Command netbench sends a batch of synthetic messages through a
// single netsim.Channel and reports delivery statistics: how many
// arrived, and the observed latency distribution. It exists to sanity
// check a Params choice before wiring it into a demo or test.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/stat"

	"github.com/andersfylling/chronosync/netsim"
	"github.com/andersfylling/chronosync/timeval"
)

// Version is set at build time.
var Version = "dev"

func main() {
	pflag.Int("sends", 10000, "number of messages to send")
	pflag.Float64("latency-mean-ms", 20, "mean latency in milliseconds")
	pflag.Float64("latency-stddev-ms", 5, "latency standard deviation in milliseconds")
	pflag.Float64("loss", 0.025, "fraction of sends dropped, in [0, 1]")
	pflag.Int64("seed", 1, "RNG seed")
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)

	n := viper.GetInt("sends")
	rng := rand.New(rand.NewSource(viper.GetInt64("seed")))
	ch := netsim.NewChannel[int](netsim.Params{
		LatencyMean:   timeval.DtFromMillis[timeval.LocalTag](viper.GetFloat64("latency-mean-ms")),
		LatencyStdDev: timeval.DtFromMillis[timeval.LocalTag](viper.GetFloat64("latency-stddev-ms")),
		Loss:          viper.GetFloat64("loss"),
	}, rng)

	t0 := timeval.TimeFromSeconds[timeval.LocalTag](0)
	for i := 0; i < n; i++ {
		ch.Send(t0, i)
	}

	// Drain far in the future: every surviving message has arrived by
	// then regardless of latency.
	arrived := ch.Receive(t0.Add(timeval.DtFromMinutes[timeval.LocalTag](60)))

	latenciesMs := make([]float64, len(arrived))
	for i, a := range arrived {
		latenciesMs[i] = a.At.Sub(t0).Millis()
	}

	fmt.Printf("netbench %s\n", Version)
	fmt.Printf("sent=%d received=%d loss_observed=%.4f\n", n, len(arrived), 1-float64(len(arrived))/float64(n))
	if len(latenciesMs) > 0 {
		fmt.Printf("latency_mean_ms=%.2f latency_stddev_ms=%.2f\n", stat.Mean(latenciesMs, nil), stat.StdDev(latenciesMs, nil))
	}

	os.Exit(0)
}
