package entities

// DilationInput carries one calculation request. Time is expressed in Unit;
// Velocity is in meters per second.
type DilationInput struct {
	Time     float64  `json:"time"`
	Unit     TimeUnit `json:"unit"`
	Velocity float64  `json:"velocity"`
}

// DilationResult is the outcome of a single dilation calculation.
// DilatedTime is expressed in the input unit. SpeedRatioPercent is in
// [0, 100), rounded to six decimal places.
type DilationResult struct {
	DilationFactor    float64  `json:"dilation_factor"`
	DilatedTime       float64  `json:"dilated_time"`
	OriginalTime      float64  `json:"original_time"`
	Unit              TimeUnit `json:"unit"`
	Velocity          float64  `json:"velocity"`
	SpeedRatioPercent float64  `json:"speed_ratio_percent"`
}
