package config

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
	LogPath      string
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
	Settings.Log.LogPath = "./logs"
}

func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
			LogLevel = lvl
		}
	}
	if Settings.Log.SearchLogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.SearchLogLvl]; found {
			SearchLogLevel = lvl
		}
	}
}
