package models

import "testing"

func TestDescribeWeatherCode_Known(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{1, "Mainly clear"},
		{2, "Partly cloudy"},
		{3, "Overcast"},
		{45, "Fog"},
		{48, "Depositing rime fog"},
		{51, "Light drizzle"},
		{53, "Moderate drizzle"},
		{55, "Dense drizzle"},
		{56, "Light freezing drizzle"},
		{57, "Dense freezing drizzle"},
		{61, "Slight rain"},
		{63, "Moderate rain"},
		{65, "Heavy rain"},
		{66, "Light freezing rain"},
		{67, "Heavy freezing rain"},
		{71, "Slight snow fall"},
		{73, "Moderate snow fall"},
		{75, "Heavy snow fall"},
		{77, "Snow grains"},
		{80, "Slight rain showers"},
		{81, "Moderate rain showers"},
		{82, "Violent rain showers"},
		{85, "Slight snow showers"},
		{86, "Heavy snow showers"},
		{95, "Thunderstorm"},
		{96, "Thunderstorm with slight hail"},
		{99, "Thunderstorm with heavy hail"},
	}

	if len(tests) != len(weatherCodes) {
		t.Fatalf("table has %d codes, test covers %d", len(weatherCodes), len(tests))
	}

	for _, tt := range tests {
		if got := DescribeWeatherCode(tt.code); got != tt.want {
			t.Errorf("DescribeWeatherCode(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDescribeWeatherCode_Unknown(t *testing.T) {
	for code := -5; code <= 120; code++ {
		if _, known := weatherCodes[code]; known {
			continue
		}
		if got := DescribeWeatherCode(code); got != UnknownWeatherCondition {
			t.Errorf("DescribeWeatherCode(%d) = %q, want %q", code, got, UnknownWeatherCondition)
		}
	}
}
