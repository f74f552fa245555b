package logrusconfig

import (
	"flag"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
)

var loglevel *int

// InitParam registers the -loglevel flag on fs, or on the default flag set
// when fs is nil
func InitParam(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	loglevel = fs.Int("loglevel", int(logrus.InfoLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information")
}

func GetLogger(level logrus.Level) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	if loglevel == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.Level(*loglevel))
	}
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 12
	customFormatter.SpacePadding = 50
	logger.SetFormatter(customFormatter)
	return logrus.NewEntry(logger)
}

// Component returns a child logger whose lines are prefixed with name. A nil
// parent gives a nil logger.
func Component(parent *logrus.Entry, name string) *logrus.Entry {
	if parent == nil {
		return nil
	}
	return parent.WithField("prefix", name)
}
