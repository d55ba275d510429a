// Command hexbeat analyzes a music file, generates the obstacle sequence and
// streams spawn events against real playback. It is a headless driver: each
// due event is printed where a renderer would instantiate geometry.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/RogerMinemu/HexBeat/internal/audio"
	"github.com/RogerMinemu/HexBeat/internal/game"
	"github.com/RogerMinemu/HexBeat/internal/level"
	"github.com/RogerMinemu/HexBeat/internal/sched"
)

func main() {
	var (
		seed    = flag.Uint64("seed", 0, "generation seed (0 = env HEXBEAT_SEED or clock)")
		volume  = flag.Float64("volume", game.DefaultVolume, "playback volume 0..1")
		mute    = flag.Bool("mute", false, "skip audio output, replay against a simulated clock")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hexbeat [flags] <track.{wav,mp3,flac,ogg}>")
		os.Exit(2)
	}

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
		if s := os.Getenv("HEXBEAT_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				*seed = v
			}
		}
	}

	path := flag.Arg(0)
	buf, err := audio.DecodeFile(path)
	if err != nil {
		logger.Error("decode failed", "err", err)
		os.Exit(1)
	}
	logger.Debug("decoded", "path", path, "sampleRate", buf.SampleRate, "duration", buf.Duration)

	session := game.NewSession(logger, *seed)
	session.LoadBuffer(buf, progressBar())

	if *mute {
		replayMuted(session)
		return
	}

	player, err := audio.NewPlayer(buf, *volume)
	if err != nil {
		logger.Error("audio init failed", "err", err)
		os.Exit(1)
	}
	defer player.Close()

	session.SetClock(player)
	session.Start()
	player.Play()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for range ticker.C {
		printEvents(session.Poll())
		if session.Finished() && player.Finished() {
			break
		}
	}
	player.Pause()
	logger.Info("track complete")
}

// progressBar adapts analysis progress callbacks to an mpb bar with the
// current stage name in front.
func progressBar() func(msg string, pct int) {
	p := mpb.New(mpb.WithWidth(48), mpb.WithOutput(os.Stderr))
	var mu sync.Mutex
	stage := "analyzing"
	bar := p.New(100,
		mpb.BarStyle(),
		mpb.PrependDecorators(decor.Any(func(decor.Statistics) string {
			mu.Lock()
			defer mu.Unlock()
			return stage
		})),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return func(msg string, pct int) {
		mu.Lock()
		stage = msg
		mu.Unlock()
		bar.SetCurrent(int64(pct))
		if pct >= 100 {
			p.Wait()
		}
	}
}

// replayMuted steps a manual clock through the whole sequence at frame
// granularity without touching the audio device.
func replayMuted(session *game.Session) {
	clock := &sched.ManualClock{}
	session.SetClock(clock)
	session.Start()
	for !session.Finished() {
		clock.Advance(1.0 / 60)
		printEvents(session.Poll())
	}
}

func printEvents(events []level.SpawnEvent) {
	for _, e := range events {
		fmt.Printf("%8.3fs  spawn  arrive=%.3fs gaps=%v speed=%.2f thickness=%.2f\n",
			e.SpawnTime, e.Time, e.Gaps.List(), e.Speed, e.Thickness)
	}
}
