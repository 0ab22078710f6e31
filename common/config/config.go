package config

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var SystemName = "Happy Birthday AI Server"
var ServiceName = "happybirthday-ai"
var InstanceId = uuid.New().String()

var Port = 8000
var GinMode = ""
var DebugEnabled = false
var LogDir = ""

// Credentials. Absent values only produce startup warnings; calls fail lazily.
var ReplicateAPIToken = ""
var GeminiAPIKey = ""

var GeminiModel = "gemini-1.5-flash"
var DefaultImageModel = "black-forest-labs/flux-1.1-pro"
var DefaultVideoModel = "luma/ray"
var DefaultAspectRatio = "16:9"

var FFmpegPath = "ffmpeg"
var FFprobePath = "ffprobe"

var AllowedOrigins = []string{
	"http://localhost:5173", // Vite
	"http://localhost:3000",
}

// RelayProxy is an optional http(s) or socks5 proxy for outbound inference calls.
var RelayProxy = ""
var RelayTimeout = 0 // unit is second, 0 means no timeout

var WebDistDir = ""

var defaults = map[string]any{
	"PORT":                 8000,
	"GIN_MODE":             "",
	"DEBUG":                false,
	"LOG_DIR":              "",
	"SERVICE_NAME":         ServiceName,
	"INSTANCE_ID":          "",
	"REPLICATE_API_TOKEN":  "",
	"GEMINI_API_KEY":       "",
	"GEMINI_MODEL":         GeminiModel,
	"DEFAULT_IMAGE_MODEL":  DefaultImageModel,
	"DEFAULT_VIDEO_MODEL":  DefaultVideoModel,
	"DEFAULT_ASPECT_RATIO": DefaultAspectRatio,
	"FFMPEG_PATH":          FFmpegPath,
	"FFPROBE_PATH":         FFprobePath,
	"CORS_ALLOWED_ORIGINS": strings.Join(AllowedOrigins, ","),
	"RELAY_PROXY":          "",
	"RELAY_TIMEOUT":        0,
	"WEB_DIST_DIR":         "",
}

// Load reads the process environment and, when envFile exists, a dotenv file.
// Process environment wins over the file.
func Load(envFile string) error {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "read env file %s", envFile)
			}
		}
	}
	v.AutomaticEnv()
	apply(v)
	return nil
}

func apply(v *viper.Viper) {
	Port = v.GetInt("PORT")
	GinMode = v.GetString("GIN_MODE")
	DebugEnabled = v.GetBool("DEBUG")
	LogDir = v.GetString("LOG_DIR")
	ServiceName = v.GetString("SERVICE_NAME")
	if id := v.GetString("INSTANCE_ID"); id != "" {
		InstanceId = id
	}

	ReplicateAPIToken = strings.TrimSpace(v.GetString("REPLICATE_API_TOKEN"))
	GeminiAPIKey = strings.TrimSpace(v.GetString("GEMINI_API_KEY"))
	GeminiModel = v.GetString("GEMINI_MODEL")
	DefaultImageModel = v.GetString("DEFAULT_IMAGE_MODEL")
	DefaultVideoModel = v.GetString("DEFAULT_VIDEO_MODEL")
	DefaultAspectRatio = v.GetString("DEFAULT_ASPECT_RATIO")

	FFmpegPath = v.GetString("FFMPEG_PATH")
	FFprobePath = v.GetString("FFPROBE_PATH")

	AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	RelayProxy = v.GetString("RELAY_PROXY")
	RelayTimeout = v.GetInt("RELAY_TIMEOUT")
	WebDistDir = v.GetString("WEB_DIST_DIR")
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
