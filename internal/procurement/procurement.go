package procurement

import "github.com/sirupsen/logrus"

type ProcurementLogHook struct{}

func (h *ProcurementLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Procurement: " + entry.Message
	return nil
}

func (h *ProcurementLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
