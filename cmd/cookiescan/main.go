// Command cookiescan audits the cookies of a target page by mutating each
// one with attack payloads and dispatching the variants back at the target.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rasadeyan/arachni/pkg/config"
	"github.com/rasadeyan/arachni/pkg/cookie"
	"github.com/rasadeyan/arachni/pkg/element"
	"github.com/rasadeyan/arachni/pkg/scan"
	"github.com/rasadeyan/arachni/pkg/transport"
)

var (
	infoc = color.New(color.FgCyan)
	okc   = color.New(color.FgGreen)
	warnc = color.New(color.FgYellow)
	errc  = color.New(color.FgRed)
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		errc.Fprintf(os.Stderr, "[!] %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg config.Scan

	cmd := &cobra.Command{
		Use:   "cookiescan",
		Short: "Audit a page's cookies with attack payloads",
		Long: `cookiescan fetches a target page, collects its cookies (from response
headers, meta tags and optionally a Netscape cookiejar file), mutates each
cookie with the given payloads and dispatches every variant back at the
target. With --extensive, variants are also carried through the page's links
and forms.

Configuration can come from flags, SCAN_* environment variables or a YAML
profile; flags win over the environment, the environment wins over the
profile.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cfg)
		},
	}

	// Flag defaults are resolved against the environment before Execute so
	// that explicit flags still override SCAN_* variables.
	config.MustLoad(&cfg)

	flags := cmd.Flags()
	flags.StringVarP(&cfg.TargetURL, "url", "u", cfg.TargetURL, "target page URL (required)")
	flags.StringVar(&cfg.JarPath, "jar", cfg.JarPath, "Netscape cookiejar file to seed cookies from")
	flags.StringVar(&cfg.ProfilePath, "profile", cfg.ProfilePath, "YAML scan profile")
	flags.StringSliceVarP(&cfg.Payloads, "payload", "p", cfg.Payloads, "payload to inject (repeatable)")
	flags.StringSliceVar(&cfg.ExcludedCookies, "exclude", cfg.ExcludedCookies, "cookie name to skip (repeatable)")
	flags.BoolVar(&cfg.Extensive, "extensive", cfg.Extensive, "carry variants through the page's links and forms")
	flags.BoolVar(&cfg.ParamFlip, "param-flip", cfg.ParamFlip, "also inject the payload as the cookie name")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	flags.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "max in-flight requests per audit")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Scan) error {
	if cfg.ProfilePath != "" {
		if err := cfg.ApplyProfileFile(cfg.ProfilePath); err != nil {
			return err
		}
	}
	if cfg.TargetURL == "" {
		return fmt.Errorf("a target URL is required (--url or SCAN_TARGET_URL)")
	}
	if len(cfg.Payloads) == 0 {
		return fmt.Errorf("at least one payload is required (--payload, SCAN_PAYLOADS or a profile)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client := transport.New(transport.WithTimeout(cfg.Timeout), transport.WithLogger(log))

	infoc.Printf("[*] fetching %s\n", cfg.TargetURL)
	resp, err := client.Get(ctx, cfg.TargetURL, transport.RequestOptions{})
	if err != nil {
		return fmt.Errorf("fetching target: %w", err)
	}

	cookies := cookie.FromResponse(cfg.TargetURL, resp.Header, resp.Body)
	if cfg.JarPath != "" {
		jarred, err := cookie.FromJarFile(cfg.JarPath, cfg.TargetURL)
		if err != nil {
			return fmt.Errorf("reading cookiejar: %w", err)
		}
		cookies = append(cookies, jarred...)
	}
	if len(cookies) == 0 {
		warnc.Println("[-] no cookies found, nothing to audit")
		return nil
	}
	infoc.Printf("[*] %d cookie(s) collected\n", len(cookies))

	if cfg.Extensive {
		page, err := element.ParsePage(cfg.TargetURL, resp.Body)
		if err != nil {
			return fmt.Errorf("parsing target page: %w", err)
		}
		for _, c := range cookies {
			c.AttachPage(page)
		}
		infoc.Printf("[*] extensive mode: %d link(s), %d form(s)\n", len(page.Links), len(page.Forms))
	}

	auditor := scan.NewAuditor(client, scan.Options{
		ExcludedCookies: cfg.ExcludedCookies,
		ParamFlip:       cfg.ParamFlip,
		Extensive:       cfg.Extensive,
	}, scan.WithLogger(log), scan.WithConcurrency(cfg.Concurrency))

	start := time.Now()
	var dispatched, failed int
	for _, c := range cookies {
		for _, payload := range cfg.Payloads {
			results, err := auditor.Audit(ctx, c, payload)
			if err != nil {
				return err
			}
			if results == nil {
				warnc.Printf("[-] skipped excluded cookie %q\n", c.Name())
				break
			}
			dispatched += len(results)
			for _, res := range results {
				failed += printResult(res)
			}
		}
	}

	okc.Printf("[+] done: %d variant(s) dispatched, %d failed, %s elapsed\n",
		dispatched, failed, time.Since(start).Round(time.Millisecond))
	return nil
}

func printResult(res scan.Result) int {
	label := res.Variant.Meta().Altered
	if res.Err != nil {
		errc.Printf("[!] %s: %v\n", label, res.Err)
		return 1
	}
	okc.Printf("[+] %s -> %d (%s)\n", label, res.Response.StatusCode,
		res.Response.Duration.Round(time.Millisecond))
	return 0
}
