package stockmeta

// 고정 프롬프트 - 사용자 편집 불가

const titlePrompt = `You are a stock photography expert. Write one concise, descriptive title for this image, suitable for submission to a stock photo platform. Respond with the title only, no quotes and no extra commentary.`

const keywordPrompt = `You are a stock photography expert. Generate 45 relevant single-word keywords for this image, ordered from most to least relevant, suitable for submission to a stock photo platform. Respond with a single comma-separated list only, no numbering and no extra commentary.`
