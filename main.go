package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	var (
		message    string
		recipients []string
		xlsxFile   string
		sender     string
		forReal    bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "smsblast",
		Short: "Blast out SMS messages to a list of recipients",
		Long: "smsblast validates a message against SMS segment-size limits, " +
			"normalizes recipient phone numbers to E.164 and delivers the " +
			"message through an SMS carrier. By default it performs a dry " +
			"run: everything is validated and reported, nothing is sent.",
		Run: func(cmd *cobra.Command, args []string) {
			logger := newLogger(verbose)

			// Load environment variables
			if err := godotenv.Load(); err != nil {
				logger.Debug("no .env file found, using existing environment variables")
			}

			carrier, err := loadCarrier(logger)
			if err != nil {
				logger.WithError(err).Error("failed to load carrier")
				os.Exit(1)
			}

			app := &App{
				logger:  logger.WithField("batch", uuid.NewString()),
				carrier: carrier,
				sender:  resolveSender(sender),
				dryRun:  !forReal,
			}
			app.Run(message, recipientSource{direct: recipients, workbook: xlsxFile})
		},
	}

	root.Flags().StringVarP(&message, "message", "m", "", "the message to send")
	root.Flags().StringArrayVarP(&recipients, "recipient", "r", nil,
		"a recipient's phone number; may be repeated")
	root.Flags().StringVarP(&xlsxFile, "xlsx-file", "f", "",
		`path to an .xlsx file with a column headed "sms", "cell", "mobile" or "telephone" containing the target phone numbers`)
	root.Flags().StringVarP(&sender, "sender", "s", "",
		"the sender ID; defaults to $USER, then the hostname")
	root.Flags().BoolVar(&forReal, "for-real", false,
		"actually send; without this flag every send is a dry run")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = root.MarkFlagRequired("message")
	root.MarkFlagsMutuallyExclusive("recipient", "xlsx-file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
