// tweetstream is a small consumer for the streaming endpoints: pick a
// stream, optionally some filter predicates, and it prints every
// message until the connection drops or it is interrupted.
package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ttakahari/CoreTweet/pkg/client"
	"github.com/ttakahari/CoreTweet/pkg/stream"
	"github.com/ttakahari/CoreTweet/pkg/streaming"
	"github.com/ttakahari/CoreTweet/pkg/token"
	"github.com/ttakahari/CoreTweet/types"
)

var opts struct {
	bearer    string
	tokenFile string
	track     []string
	follow    []int64
	buffered  bool
	verbose   bool
}

func main() {
	root := &cobra.Command{
		Use:          "tweetstream <user|site|filter|sample|firehose>",
		Short:        "Consume a streaming endpoint and print its messages",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	root.Flags().StringVar(&opts.bearer, "token", os.Getenv("TWITTER_BEARER_TOKEN"), "bearer token (defaults to $TWITTER_BEARER_TOKEN)")
	root.Flags().StringVar(&opts.tokenFile, "token-file", "", "file holding the bearer token, watched for rotation")
	root.Flags().StringSliceVar(&opts.track, "track", nil, "filter stream: phrases to track")
	root.Flags().Int64SliceVar(&opts.follow, "follow", nil, "filter stream: user IDs to follow")
	root.Flags().BoolVar(&opts.buffered, "buffer", false, "drain the socket eagerly into an elastic buffer")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !opts.verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	tp, err := tokenProvider()
	if err != nil {
		return err
	}

	kc := client.New(tp, client.WithLogger(client.ZerologLogger{Log: log}))
	api := streaming.NewAPI(kc, streaming.WithLogger(client.ZerologLogger{Log: log}))

	var params *streaming.Params
	if len(opts.track) > 0 || len(opts.follow) > 0 {
		params = streaming.NewParams()
		if len(opts.track) > 0 {
			params.Set("track", opts.track)
		}
		if len(opts.follow) > 0 {
			params.Set("follow", opts.follow)
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ms, err := api.Start(ctx, streaming.StreamType(args[0]), params)
	if err != nil {
		return err
	}
	defer ms.Close()

	var src stream.Stream[types.StreamingMessage] = ms
	if opts.buffered {
		buffered := stream.NewBufferedStream[types.StreamingMessage](ms)
		defer buffered.Stop()
		src = buffered
	}

	log.Info().Str("stream", args[0]).Msg("connected")

	err = stream.Each(src, func(msg types.StreamingMessage) {
		printMessage(log, msg)
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	log.Info().Msg("stream closed")
	return nil
}

func tokenProvider() (token.TokenProvider, error) {
	if opts.tokenFile != "" {
		return token.NewFileToken(opts.tokenFile)
	}
	if opts.bearer != "" {
		return token.NewStaticToken(opts.bearer), nil
	}
	return nil, errors.New("no credentials: pass --token, --token-file or set TWITTER_BEARER_TOKEN")
}

func printMessage(log zerolog.Logger, msg types.StreamingMessage) {
	switch m := msg.(type) {
	case *types.StatusMessage:
		e := log.Info().Int64("id", m.ID)
		if m.User != nil {
			e = e.Str("user", m.User.ScreenName)
		}
		e.Msg(m.Text)
	case *types.DeleteMessage:
		log.Info().Int64("status_id", m.StatusID).Int64("user_id", m.UserID).Msg("status deleted")
	case *types.FriendsMessage:
		log.Info().Int("count", len(m.Friends)).Msg("friends preamble")
	case *types.EventMessage:
		log.Info().Str("event", m.Event).Msg("event")
	case *types.LimitMessage:
		log.Warn().Int64("track", m.Track).Msg("statuses withheld by rate limit")
	case *types.DisconnectMessage:
		log.Warn().Int("code", m.Code).Str("reason", m.Reason).Msg("server disconnecting")
	case *types.WarningMessage:
		log.Warn().Str("code", m.Code).Int("percent_full", m.PercentFull).Msg(m.Message)
	case *types.EnvelopeMessage:
		log.Info().Int64("for_user", m.ForUser).Str("inner", string(m.Message.Type())).Msg("site stream envelope")
	case *types.RawJSONMessage:
		log.Debug().Err(m.Err).Msg(m.Raw)
	default:
		log.Info().Str("type", string(msg.Type())).Msg("message")
	}
}
