// Command chrono-demo drives a simulated server tick stream through a
// MockNet link and a client TickPlayback, logging convergence metrics
// as it runs. It is a harness for exercising the timing substrate
// end-to-end without a real transport or renderer.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/andersfylling/chronosync/clock"
	"github.com/andersfylling/chronosync/ids"
	"github.com/andersfylling/chronosync/metrics"
	"github.com/andersfylling/chronosync/netsim"
	"github.com/andersfylling/chronosync/periodic"
	"github.com/andersfylling/chronosync/playback"
	"github.com/andersfylling/chronosync/tickplay"
	"github.com/andersfylling/chronosync/timeval"
)

// Version is set at build time.
var Version = "dev"

type tick struct {
	num   timeval.TickNum
	value float64 // a stand-in for real game state
}

func main() {
	pflag.Float64("duration", 5.0, "simulated seconds to run")
	pflag.Float64("tick-hz", 20.0, "server simulation rate")
	pflag.String("profile", "wonky_fast", "network profile: perfect, zen_fast, zen_slow, wonky_fast, wonky_slow")
	pflag.Float64("delay", 0.1, "playback clock delay in seconds")
	pflag.Int64("seed", 1, "RNG seed")
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)
	viper.SetEnvPrefix("CHRONO")
	viper.AutomaticEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chrono-demo: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID), zap.String("version", Version))

	params := profileByName(viper.GetString("profile"))
	logger.Info("starting run",
		zap.Float64("duration_s", viper.GetFloat64("duration")),
		zap.Float64("tick_hz", viper.GetFloat64("tick-hz")),
		zap.String("profile", viper.GetString("profile")),
	)

	run(runConfig{
		duration: timeval.DtFromSeconds[timeval.LocalTag](viper.GetFloat64("duration")),
		tickRate: viper.GetFloat64("tick-hz"),
		delay:    timeval.DtFromSeconds[timeval.GameTag](viper.GetFloat64("delay")),
		profile:  params,
		seed:     viper.GetInt64("seed"),
	}, logger)
}

type runConfig struct {
	duration timeval.LocalDt
	tickRate float64
	delay    timeval.GameDt
	profile  netsim.SocketParams
	seed     int64
}

func profileByName(name string) netsim.SocketParams {
	var p netsim.Params
	switch name {
	case "perfect":
		p = netsim.PerfectProfile()
	case "zen_fast":
		p = netsim.ZenFastProfile()
	case "zen_slow":
		p = netsim.ZenSlowProfile()
	case "wonky_slow":
		p = netsim.WonkySlowProfile()
	default:
		p = netsim.WonkyFastProfile()
	}
	return netsim.SocketParams{ServerOut: p, ClientOut: p}
}

func run(cfg runConfig, logger *zap.Logger) {
	const player = ids.PlayerId(1)

	localClock := clock.New()

	rng := rand.New(rand.NewSource(cfg.seed))
	net := netsim.NewMockNet[struct{}, tick]([]ids.PlayerId{player}, cfg.profile, localClock.Now, rng)

	tp := tickplay.New[tick](localClock.Now, tickplay.Config{
		PlaybackParams: playback.Params{
			Delay:        cfg.delay,
			MaxOvertake:  timeval.DtFromSeconds[timeval.GameTag](1),
			MaxSampleAge: timeval.DtFromSeconds[timeval.LocalTag](2),
		},
		MaxResidual: timeval.DtFromSeconds[timeval.GameTag](0.5),
	})

	serverTimer := periodic.New(timeval.DtFromSeconds[timeval.LocalTag](1.0 / cfg.tickRate))
	m := metrics.New(localClock, timeval.DtFromSeconds[timeval.LocalTag](5))

	const frameDt = 0.0167 // ~60 FPS driver
	var tickNum timeval.TickNum
	frames := int(cfg.duration.Seconds() / frameDt)
	var simTime timeval.LocalTime

	for f := 0; f < frames; f++ {
		simTime = simTime.Add(timeval.DtFromSeconds[timeval.LocalTag](frameDt))
		localDt := localClock.Set(simTime)

		serverTimer.Advance(localDt)
		for serverTimer.Trigger() {
			gameTime := tickNum.ToGameTime(timeval.DtFromSeconds[timeval.GameTag](1.0 / cfg.tickRate))
			net.SendToClient(player, tick{num: tickNum, value: gameTime.Seconds()})
			tickNum = tickNum.Next()
		}

		for _, arrived := range net.ReceiveFromServer(player) {
			tp.RecordTick(arrived.At, timeval.TimeFromSeconds[timeval.GameTag](arrived.Msg.value), arrived.Msg)
		}

		started := tp.Advance(localDt)
		for range started {
			// a real host would trigger render/side-effect work here.
		}

		if current, _, ok := tp.CurrentTick(); ok {
			m.RecordGauge("playback_residual_ms", (tp.StreamTime().Seconds()-current.Seconds())*1000)
		}
	}

	if g, ok := m.Gauge("playback_residual_ms"); ok {
		logger.Info("run complete",
			zap.Int("frames", frames),
			zap.Float64("mean_residual_ms", g.Mean()),
			zap.Float64("stddev_residual_ms", g.StdDev()),
		)
	}
}
