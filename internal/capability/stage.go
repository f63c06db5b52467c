package capability

type Stage string

const (
	StageTranscribe Stage = "transcribe"
	StageExtract    Stage = "extract"
	StageSummarize  Stage = "summarize"
	StageTriage     Stage = "triage"
)
