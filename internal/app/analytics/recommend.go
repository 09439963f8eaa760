package analytics

import (
	"strings"

	"github.com/varun021/Health-Tracker/internal/app/ds"
)

// Red-flag thresholds for lifestyle advice. Fixed policy, not ML-driven.
const (
	lowSleepHours     = 6
	highStressLevel   = 7
	overweightBMI     = 25.0
	underweightBMI    = 18.5
	persistentMinimum = 2 // a pattern needs at least this many data points
)

type Advice struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// LifestyleRecommendations scans a user's recent submissions for
// persistent red flags and emits templated advice. Persistent means the
// flag holds in the majority of submissions that report the field, with at
// least persistentMinimum data points; point-in-time flags (smoking, BMI)
// are read from the most recent submission.
func LifestyleRecommendations(subs []ds.Submission) []Advice {
	advice := []Advice{}
	if len(subs) == 0 {
		return advice
	}

	var sleepTotal, sleepLow int
	var stressTotal, stressHigh int
	for _, sub := range subs {
		if sub.SleepHours != nil {
			sleepTotal++
			if *sub.SleepHours < lowSleepHours {
				sleepLow++
			}
		}
		if sub.StressLevel != nil {
			stressTotal++
			if *sub.StressLevel >= highStressLevel {
				stressHigh++
			}
		}
	}

	if sleepTotal >= persistentMinimum && sleepLow*2 > sleepTotal {
		advice = append(advice, Advice{
			Category: "sleep",
			Message:  "You are consistently sleeping less than 6 hours. Aim for 7-9 hours of sleep to support recovery and immunity.",
		})
	}
	if stressTotal >= persistentMinimum && stressHigh*2 > stressTotal {
		advice = append(advice, Advice{
			Category: "stress",
			Message:  "Your stress level has stayed high. Consider relaxation techniques such as meditation, breathing exercises, or a daily walk.",
		})
	}

	latest := subs[0]
	for _, sub := range subs[1:] {
		if sub.CreatedAt.After(latest.CreatedAt) {
			latest = sub
		}
	}

	if latest.Smoking {
		advice = append(advice, Advice{
			Category: "smoking",
			Message:  "Quitting smoking is the single most effective step you can take for your long-term health.",
		})
	}
	if latest.Alcohol {
		advice = append(advice, Advice{
			Category: "alcohol",
			Message:  "Limit alcohol consumption; frequent drinking worsens sleep quality and recovery.",
		})
	}
	switch strings.ToLower(latest.ExerciseFrequency) {
	case "never", "rarely":
		advice = append(advice, Advice{
			Category: "exercise",
			Message:  "Try to get at least 30 minutes of moderate exercise most days of the week.",
		})
	}
	if latest.BMI != nil {
		if *latest.BMI >= overweightBMI {
			advice = append(advice, Advice{
				Category: "weight",
				Message:  "Your BMI is above the healthy range. A balanced diet and regular activity can help bring it down.",
			})
		} else if *latest.BMI < underweightBMI {
			advice = append(advice, Advice{
				Category: "weight",
				Message:  "Your BMI is below the healthy range. Consider a nutrient-dense diet and consult a professional if weight loss is unintended.",
			})
		}
	}

	return advice
}
