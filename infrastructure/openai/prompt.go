package openai

// systemPrompt frames the model as an expert tour guide so place-name
// recall favors real, recommendable destinations
const systemPrompt = "You are a well known tour guide who knows all the places around the world"

// userPromptHeader describes the two text signals and demands a strict JSON
// reply. Location plausibility checking is a prompt-level heuristic: the
// model is asked to verify each place exists and to skip uncertain ones.
const userPromptHeader = `You will be given 2 sets of text. The first set is the transcript of the audio. The second set is the text extracted from the video frames. The 2 sets of text are from the same video. As this is a travel guide, sometimes the transcribed text could be empty if it is fully visual.
Text from video frames can be harder to understand. Please understand the text and identify the locations mentioned in the text. Double check whether the location exists and it should be likely a place recommended to go. Text spelling could be wrong so make sense out of it as best as you can. If you are unsure, you can skip the location.
You are to return a JSON object in the following format and NOTHING ELSE:

{"locations": ["location1", "location2"]}
`
