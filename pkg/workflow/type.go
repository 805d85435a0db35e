package workflow

const (
	// 創作寄りの出力を求めるため、温度は高めに設定しています。
	defaultGeminiTemperature = float32(0.7)
)
