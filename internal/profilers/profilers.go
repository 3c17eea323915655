// Package profilers sets up profiling for the binaries: an HTTP pprof server (flag -prof), a CPU
// profile (flag -cpu_profile) and a heap profile written on exit (flag -mem_profile).
//
// If linked, it will install the profiler flags. Moves played through Play are labeled with the
// player's name, so the CPU time of each player in a match can be told apart, e.g. with
// "go tool pprof -tagfocus=player=alpha-beta".
package profilers

import (
	"context"
	"flag"
	"fmt"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, runs the profile at the given port.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file` on exit")

	// globalCtx is set on the call to Setup.
	globalCtx context.Context
	server    *http.Server
)

// Setup starts the HTTP (flag -prof) and CPU profilers (flag -cpu_profile), if they were configured.
// You should follow with a deferred call to OnQuit.
func Setup(ctx context.Context) {
	globalCtx = ctx
	if *flagProfiler >= 0 {
		startHTTPProfiler()
	}
	if *flagCPUProfile != "" {
		if err := startCPUProfile(*flagCPUProfile); err != nil {
			klog.Fatalf("%+v", err)
		}
	}
}

// Play runs fn with the pprof label player=name, so its samples can be attributed to the player.
// It is a plain call to fn if no profiler is configured.
func Play(ctx context.Context, name string, fn func()) {
	if *flagProfiler < 0 && *flagCPUProfile == "" {
		fn()
		return
	}
	pprof.Do(ctx, pprof.Labels("player", name), func(context.Context) { fn() })
}

// OnQuit should be called before the exit of the main() function, typically this is setup as a deferred call
// just after Setup.
func OnQuit() {
	if *flagCPUProfile != "" {
		pprof.StopCPUProfile()
	}
	if *flagMemProfile != "" {
		if err := writeHeapProfile(*flagMemProfile); err != nil {
			klog.Errorf("%+v", err)
		}
	}
	if server != nil {
		httpProfilerOnQuit()
	}
}

func startCPUProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create CPU profile %q", path)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return errors.Wrap(err, "could not start CPU profile")
	}
	klog.V(1).Infof("CPU profile being written to %q", path)
	return nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create heap profile %q", path)
	}
	defer func() { _ = f.Close() }()
	runtime.GC() // Only what is still reachable.
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrapf(err, "could not write heap profile to %q", path)
	}
	klog.V(1).Infof("Heap profile written to %q", path)
	return nil
}

// startHTTPProfiler serves net/http/pprof on localhost, at the port given by -prof.
func startHTTPProfiler() {
	server = &http.Server{Addr: fmt.Sprintf("localhost:%d", *flagProfiler)}
	fmt.Printf("Starting profiler on %s/debug/pprof\n", server.Addr)
	fmt.Printf("- You can access it with: $ go tool pprof %s/debug/pprof/profile\n", server.Addr)
	fmt.Printf("- Program will be kept alive on end, you will have to interrupt it (Ctrl+C) to exit\n")
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Fatalf("profiler server on %s failed: %v", server.Addr, err)
		}
	}()
}

// httpProfilerOnQuit keeps the program alive, with the profiler serving, until globalCtx is cancelled
// (Ctrl+C). Then it shuts down the server.
func httpProfilerOnQuit() {
	if globalCtx.Err() == nil {
		fmt.Printf("- Program finished: kept alive with profiler opened at %s/debug/pprof\n", server.Addr)
		fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
		<-globalCtx.Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		klog.Warningf("profiler server shutdown: %v", err)
	}
	fmt.Printf("... exiting ...\n")
}
