package intent

// ProtocolInstructions tells the model how to answer so Classify can route the reply
// it is appended to the persona prompt on every chat completion
const ProtocolInstructions = `Reply protocol:

1. Resume or CV requests in the current message: reply only with
` + TokenResume + `

2. Requests for specific jobs or openings: reply only with
` + PrefixJobSearch + ` <job title> <location>
Use "` + DefaultLocation + `" when no location is given.

3. Requests for courses, tutorials or learning material on a topic: reply only with
` + PrefixCourse + ` <topic>

4. Requests for communities, groups, forums or people to connect with: reply only with
` + PrefixCommunity + ` <topic>

5. Requests for a list of job portals or job websites: reply only with
` + TokenJobPortals + `

6. Everything else: reply with one JSON object and no other text.
Escape newlines as \n and quotes as \" inside string values. Markdown is allowed inside "response".
{
  "response": "the answer in the user's language",
  "context": "a running summary of the conversation for future turns",
  "chatName": "a short conversation title",
  "emoji": "one emoji for the conversation"
}`
