package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/chatlog/internal/config"
)

func Steps() []Step {
	return []Step{
		NewChoiceStep("Where should chat history be kept?", "CHAT_HISTORY_STORAGE_TYPE", []Choice{
			{Label: "On disk (survives restarts)", Value: config.StorageLocal},
			{Label: "In memory (this process only)", Value: config.StorageSession},
		}),
		NewInputStep("How many messages should be kept?", "CHAT_HISTORY_MAX_ENTRIES", "30", positiveInt),
		NewInputStep("Delay before restored history appears", "CHAT_HISTORY_LOAD_DELAY", "500ms", duration),
		NewChoiceStep("Do bot bubbles show an avatar?", "BOT_BUBBLE_SHOW_AVATAR", []Choice{
			{Label: "No", Value: "false"},
			{Label: "Yes", Value: "true"},
		}),
		NewInputStep("Theme primary color", "THEME_PRIMARY_COLOR", "#42b0c5", hexColor),
	}
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("%q is not a positive number", s)
	}
	return nil
}

func duration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fmt.Errorf("%q is not a duration such as 500ms", s)
	}
	return nil
}

func hexColor(s string) error {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return fmt.Errorf("%q is not a color such as #42b0c5", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return fmt.Errorf("%q is not a color such as #42b0c5", s)
	}
	return nil
}
