package replicate

// ImageInput is the Flux-style prediction input used for still images.
type ImageInput struct {
	Prompt      string
	AspectRatio string
}

// VideoInput is the Luma-style prediction input. StartImageURL seeds the first frame.
type VideoInput struct {
	Prompt        string
	StartImageURL string
}

func (in ImageInput) toPredictionInput() map[string]any {
	input := map[string]any{
		"prompt":           in.Prompt,
		"output_format":    OutputFormat,
		"output_quality":   OutputQuality,
		"safety_tolerance": SafetyTolerance,
	}
	if in.AspectRatio != "" {
		input["aspect_ratio"] = in.AspectRatio
	}
	return input
}

func (in VideoInput) toPredictionInput() map[string]any {
	input := map[string]any{
		"prompt": in.Prompt,
		"loop":   false,
	}
	if in.StartImageURL != "" {
		input["start_image_url"] = in.StartImageURL
	}
	return input
}
