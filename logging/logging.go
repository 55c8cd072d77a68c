package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Output always goes to stdout; when path
// is non-empty it is additionally tee'd into a scoped file log. The
// returned closer flushes and closes the file sink, if any.
func New(level, path string) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}

	var fileLog *FileLog
	if path != "" {
		fileLog, err = OpenFileLog(path)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, fileLog)
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), lvl)
	log := zap.New(core)

	closer := func() {
		log.Sync()
		if fileLog != nil {
			fileLog.Close()
		}
	}

	return log, closer, nil
}
