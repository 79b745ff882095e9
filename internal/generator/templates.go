package generator

import "text/template"

// scriptVars drives the C# script templates
type scriptVars struct {
	GameIdea          string
	HasDoubleJump     bool
	HasCollectibles   bool
	HasEnemies        bool
	HasMultipleLevels bool
}

var scriptTemplates = template.Must(template.New("scripts").Parse(`
{{define "PlayerController"}}using UnityEngine;

// Player movement for: {{.GameIdea}}
public class PlayerController : MonoBehaviour
{
    public float speed = 5f;
    public float jumpForce = 7f;

    private Rigidbody2D rb;
    private bool isGrounded;
{{- if .HasDoubleJump}}
    private bool doubleJumpAvailable;
{{- end}}

    void Start()
    {
        rb = GetComponent<Rigidbody2D>();
    }

    void Update()
    {
        float moveInput = Input.GetAxis("Horizontal");
        rb.velocity = new Vector2(moveInput * speed, rb.velocity.y);

        if (Input.GetKeyDown(KeyCode.Space))
        {
            if (isGrounded)
            {
                rb.AddForce(Vector2.up * jumpForce, ForceMode2D.Impulse);
                isGrounded = false;
{{- if .HasDoubleJump}}
                doubleJumpAvailable = true;
{{- end}}
            }
{{- if .HasDoubleJump}}
            else if (doubleJumpAvailable)
            {
                rb.velocity = new Vector2(rb.velocity.x, 0f);
                rb.AddForce(Vector2.up * jumpForce, ForceMode2D.Impulse);
                doubleJumpAvailable = false;
            }
{{- end}}
        }
    }

    void OnCollisionEnter2D(Collision2D collision)
    {
        if (collision.gameObject.CompareTag("Ground"))
        {
            isGrounded = true;
        }
    }
}
{{end}}

{{define "GameManager"}}using UnityEngine;
using UnityEngine.SceneManagement;

// Global game state for: {{.GameIdea}}
public class GameManager : MonoBehaviour
{
    public static GameManager Instance { get; private set; }

    public int score;
{{- if .HasMultipleLevels}}
    public int currentLevel = 1;
{{- end}}

    void Awake()
    {
        if (Instance != null && Instance != this)
        {
            Destroy(gameObject);
            return;
        }
        Instance = this;
        DontDestroyOnLoad(gameObject);
    }

    public void AddScore(int amount)
    {
        score += amount;
    }

    public void RestartGame()
    {
        score = 0;
        SceneManager.LoadScene(SceneManager.GetActiveScene().name);
    }
}
{{end}}

{{define "UIManager"}}using UnityEngine;
using UnityEngine.UI;

public class UIManager : MonoBehaviour
{
    public Text scoreText;

    void Update()
    {
        if (scoreText != null && GameManager.Instance != null)
        {
            scoreText.text = "Score: " + GameManager.Instance.score;
        }
    }
}
{{end}}

{{define "Collectible"}}using UnityEngine;

public class Collectible : MonoBehaviour
{
    public int value = 1;

    void OnTriggerEnter2D(Collider2D other)
    {
        if (other.CompareTag("Player"))
        {
            GameManager.Instance.AddScore(value);
            Destroy(gameObject);
        }
    }
}
{{end}}

{{define "EnemyAI"}}using UnityEngine;

public class EnemyAI : MonoBehaviour
{
    public float patrolSpeed = 2f;
    public float patrolDistance = 3f;

    private Vector3 startPosition;
    private int direction = 1;

    void Start()
    {
        startPosition = transform.position;
    }

    void Update()
    {
        transform.Translate(Vector2.right * direction * patrolSpeed * Time.deltaTime);
        if (Mathf.Abs(transform.position.x - startPosition.x) >= patrolDistance)
        {
            direction = -direction;
        }
    }
}
{{end}}

{{define "LevelManager"}}using UnityEngine;
using UnityEngine.SceneManagement;

public class LevelManager : MonoBehaviour
{
    public void LoadNextLevel()
    {
        int next = SceneManager.GetActiveScene().buildIndex + 1;
        if (next < SceneManager.sceneCountInBuildSettings)
        {
            SceneManager.LoadScene(next);
        }
    }
}
{{end}}
`))

const readmeTemplate = `# %s

This Unity project was generated by AI Unity Game Generator.

## Getting Started

1. Open Unity 2020.3 or later
2. Open this project folder
3. Open the Main scene in Assets/Scenes/
4. Press Play to test the game

## Generated Scripts

- PlayerController.cs: Handles player movement and input
- GameManager.cs: Manages game state and flow
- UIManager.cs: Handles UI elements

## Customization

Feel free to modify the generated scripts to match your vision!
`

const mainSceneContent = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!29 &1
OcclusionCullingSettings:
  m_ObjectHideFlags: 0
  serializedVersion: 2
  m_SceneGUID: 00000000000000000000000000000000
  m_OcclusionCullingData: {fileID: 0}
--- !u!104 &2
RenderSettings:
  m_ObjectHideFlags: 0
  serializedVersion: 9
  m_Fog: 0
  m_FogColor: {r: 0.5, g: 0.5, b: 0.5, a: 1}
  m_AmbientIntensity: 1
  m_SkyboxMaterial: {fileID: 0}
`
