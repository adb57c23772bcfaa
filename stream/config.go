package stream

type Config struct {
    Mqtt struct {
        URL string `yaml:"url"`
        Username string `yaml:"username"`
        Password string `yaml:"password"`
        Topics struct {
            Stream string `yaml:"stream"`
        } `yaml:"topics"`
    } `yaml:"mqtt"`
    Strip struct {
        // NumPixels is capped at 65535, the most the frame wire format
        // can carry.
        NumPixels int `yaml:"numPixels"`
        FrameRate float64 `yaml:"frameRate"`
    } `yaml:"strip"`
    Bounce struct {
        DecayRatio float64 `yaml:"decayRatio"`
        RestThreshold float64 `yaml:"restThreshold"`
        PeriodMs int64 `yaml:"periodMs"`
    } `yaml:"bounce"`
}
