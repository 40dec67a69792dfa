package generator

import "fmt"

const articlePromptTemplate = `Write an SEO-optimized blog article about '%s' for an audience of '%s', connecting it with the trend '%s' and matching the tone of voice of the following writing sample: '%s'.`

const scriptPromptTemplate = `Based on the following article, write a 10-minute YouTube video script with markers for viral short-form cuts. Article: %s`

func BuildArticlePrompt(topic, audience, trend, toneSample string) string {
	return fmt.Sprintf(articlePromptTemplate, topic, audience, trend, toneSample)
}

func BuildScriptPrompt(article string) string {
	return fmt.Sprintf(scriptPromptTemplate, article)
}
